package author

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/authordesk/internal/platform/alert"
	"github.com/taibuivan/authordesk/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/authordesk/internal/platform/request"
	"github.com/taibuivan/authordesk/internal/platform/respond"
	"github.com/taibuivan/authordesk/internal/platform/validate"
)

// Length limits applied when binding a request body.
const (
	maxNameLen = 200
	maxBioLen  = 5000
)

// Handler exposes the author resource over HTTP. Every mutation answers with
// an alert header next to the body.
type Handler struct {
	service *Service
	alerts  *alert.Writer
}

func NewHandler(service *Service, alerts *alert.Writer) *Handler {
	return &Handler{service: service, alerts: alerts}
}

// Routes returns the author endpoints, to be mounted at [ResourcePath].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createAuthor)
	router.Put("/", handler.updateAuthor)
	router.Get("/", handler.listAuthors)
	router.Get("/{id}", handler.getAuthor)
	router.Delete("/{id}", handler.deleteAuthor)

	return router
}

// createAuthor handles POST /authors: 201 with Location, or 400 when the body
// already carries an id.
func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	input, err := bindAuthor(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.create(writer, request, input)
}

// updateAuthor handles PUT /authors. A body without an id is created exactly
// as POST would, status 201 included.
func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	input, err := bindAuthor(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !input.HasID() {
		handler.create(writer, request, input)
		return
	}

	updated, err := handler.service.Update(request.Context(), input)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.alerts.Apply(writer.Header(), handler.alerts.Updated(EntityName, input.IDString()))
	respond.Resource(writer, updated)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Resource(writer, authors)
}

// getAuthor handles GET /authors/{id}: 404 with an empty body when absent.
func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, found, err := handler.service.GetOne(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !found {
		respond.Status(writer, http.StatusNotFound)
		return
	}
	respond.Resource(writer, author)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.alerts.Apply(writer.Header(), handler.alerts.Deleted(EntityName, strconv.FormatInt(authorID, 10)))
	respond.Status(writer, http.StatusOK)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request, input Author) {
	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	id := created.IDString()
	handler.alerts.Apply(writer.Header(), handler.alerts.Created(EntityName, id))
	respond.Created(writer, ResourcePath+"/"+id, created)
}

// fail renders the id-exists precondition as a bodiless 400 with a failure
// alert; every other error goes through the JSON error envelope.
func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	if !errors.Is(err, ErrIDExists) {
		respond.Error(writer, request, err)
		return
	}

	ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "author_request_rejected",
		slog.String("code", ErrIDExists.Code),
		slog.String("reason", ErrIDExists.Message),
	)

	handler.alerts.Apply(writer.Header(), handler.alerts.Failure(EntityName, ErrIDExists.Code, ErrIDExists.Message))
	respond.Status(writer, http.StatusBadRequest)
}

// bindAuthor decodes the body and checks that it is a well-formed author.
func bindAuthor(writer http.ResponseWriter, request *http.Request) (Author, error) {
	var input Author
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return Author{}, err
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxNameLen)
	for _, alt := range input.NameAlt {
		validator.MaxLen(FieldNameAlt, alt, maxNameLen)
	}
	if input.Bio != nil {
		validator.MaxLen(FieldBio, *input.Bio, maxBioLen)
	}
	if input.ImageURL != nil {
		validator.URL(FieldImageURL, *input.ImageURL)
	}

	if err := validator.Err(); err != nil {
		return Author{}, err
	}
	return input, nil
}

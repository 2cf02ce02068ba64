package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-viper/mapstructure/v2"

	"github.com/haguru/userdirectory/internal/interfaces"
	"github.com/haguru/userdirectory/internal/models/dto"
	"github.com/haguru/userdirectory/internal/userservice"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	Logger      interfaces.Logger
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService, logger interfaces.Logger) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		Logger:      logger,
	}
}

// List handles GET on the collection. The optional order query parameter
// sorts by username.
func (r *Route) List(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()
	order := userservice.ParseSortOrder(req.URL.Query().Get(OrderQueryParam))

	users := r.UserService.ListUsers(req.Context(), order)
	r.writeJSON(w, OperationList, http.StatusOK, users)
	r.observe(OperationList, http.StatusOK, startTime)
}

// Get handles GET on a single user.
func (r *Route) Get(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()
	username, ok := pathUsername(req)
	if !ok {
		r.status(w, OperationGet, http.StatusNotFound, startTime)
		return
	}

	user, err := r.UserService.GetUser(req.Context(), username)
	if err != nil {
		r.fail(w, OperationGet, err, startTime)
		return
	}

	r.writeJSON(w, OperationGet, http.StatusOK, user)
	r.observe(OperationGet, http.StatusOK, startTime)
}

// Replace handles PUT on a single user. The JSON body is stored under the
// path username and the response points back at the request URL.
func (r *Route) Replace(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()
	username, ok := pathUsername(req)
	if !ok {
		r.status(w, OperationReplace, http.StatusNotFound, startTime)
		return
	}

	if !hasMediaType(req, ContentTypeJson, ContentTypeJavascript, ContentTypeText) {
		r.status(w, OperationReplace, http.StatusUnsupportedMediaType, startTime)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, MaxBodyBytes))
	if err != nil {
		r.Logger.Error(ErrFailedToReadBody, "user", username, "error", err)
		r.status(w, OperationReplace, http.StatusInternalServerError, startTime)
		return
	}

	if err := r.UserService.ReplaceUser(req.Context(), username, body); err != nil {
		r.fail(w, OperationReplace, err, startTime)
		return
	}

	w.Header().Set(LocationHeader, absoluteURL(req, req.URL.Path, req.URL.EscapedPath()))
	r.status(w, OperationReplace, http.StatusCreated, startTime)
}

// Create handles a form POST on the collection.
func (r *Route) Create(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()

	form := &dto.UserCreateFormDTO{}
	if status := r.decodeForm(req, form); status != 0 {
		r.status(w, OperationCreate, status, startTime)
		return
	}
	if !req.PostForm.Has(UsernameParam) {
		r.Logger.Error(ErrMissingUsername)
		r.status(w, OperationCreate, http.StatusInternalServerError, startTime)
		return
	}

	err := r.UserService.CreateUser(req.Context(), form.Username, form.DisplayName, form.Password)
	if errors.Is(err, userservice.ErrUserAlreadyExists) {
		r.writeText(w, http.StatusConflict, fmt.Sprintf(MsgUserExistsFormat, form.Username))
		r.observe(OperationCreate, http.StatusConflict, startTime)
		return
	}
	if err != nil {
		r.fail(w, OperationCreate, err, startTime)
		return
	}

	location := strings.TrimSuffix(req.URL.Path, "/") + "/" + form.Username
	rawLocation := strings.TrimSuffix(req.URL.EscapedPath(), "/") + "/" + url.PathEscape(form.Username)
	w.Header().Set(LocationHeader, absoluteURL(req, location, rawLocation))
	r.status(w, OperationCreate, http.StatusCreated, startTime)
}

// Modify handles a form POST on a single user, overwriting its display
// name and password.
func (r *Route) Modify(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()
	username, ok := pathUsername(req)
	if !ok {
		r.status(w, OperationModify, http.StatusNotFound, startTime)
		return
	}

	form := &dto.UserUpdateFormDTO{}
	if status := r.decodeForm(req, form); status != 0 {
		r.status(w, OperationModify, status, startTime)
		return
	}

	if err := r.UserService.ModifyUser(req.Context(), username, form.DisplayName, form.Password); err != nil {
		r.fail(w, OperationModify, err, startTime)
		return
	}

	r.writeText(w, http.StatusOK, MsgModifySuccess)
	r.observe(OperationModify, http.StatusOK, startTime)
}

// Delete handles DELETE on a single user. Deleting a missing user is accepted.
func (r *Route) Delete(w http.ResponseWriter, req *http.Request) {
	startTime := time.Now()
	username, ok := pathUsername(req)
	if !ok {
		r.status(w, OperationDelete, http.StatusNotFound, startTime)
		return
	}

	if err := r.UserService.DeleteUser(req.Context(), username); err != nil {
		r.fail(w, OperationDelete, err, startTime)
		return
	}

	r.status(w, OperationDelete, http.StatusAccepted, startTime)
}

// pathUsername returns the decoded username path segment. chi matches on
// URL.RawPath when it is set, leaving the segment percent-encoded. It
// reports false when that segment is not valid percent-encoding.
func pathUsername(req *http.Request) (string, bool) {
	username := chi.URLParam(req, UsernameParam)
	if req.URL.RawPath == "" {
		return username, true
	}
	username, err := url.PathUnescape(username)
	if err != nil {
		return "", false
	}
	return username, true
}

// decodeForm parses a url-encoded body into out. It returns 0 on success
// or the status code to answer with.
func (r *Route) decodeForm(req *http.Request, out interface{}) int {
	if !hasMediaType(req, ContentTypeFormURLEncoded) {
		return http.StatusUnsupportedMediaType
	}
	if err := req.ParseForm(); err != nil {
		r.Logger.Warn(ErrFailedToParseForm, "error", err)
		return http.StatusBadRequest
	}

	fields := make(map[string]interface{}, len(req.PostForm))
	for key := range req.PostForm {
		fields[key] = req.PostForm.Get(key)
	}
	if err := mapstructure.Decode(fields, out); err != nil {
		r.Logger.Warn(ErrFailedToDecodeForm, "error", err)
		return http.StatusBadRequest
	}
	return 0
}

// fail maps a service error onto a bare status code.
func (r *Route) fail(w http.ResponseWriter, operation string, err error, startTime time.Time) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		code = http.StatusNotFound
	case errors.Is(err, userservice.ErrUserAlreadyExists):
		code = http.StatusConflict
	}
	r.status(w, operation, code, startTime)
}

func (r *Route) status(w http.ResponseWriter, operation string, code int, startTime time.Time) {
	w.WriteHeader(code)
	r.observe(operation, code, startTime)
}

func (r *Route) writeJSON(w http.ResponseWriter, operation string, code int, v interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "operation", operation, "error", err)
	}
}

func (r *Route) writeText(w http.ResponseWriter, code int, text string) {
	w.Header().Set(ContentType, ContentTypeTextUTF8)
	w.WriteHeader(code)
	_, _ = io.WriteString(w, text)
}

func (r *Route) observe(operation string, code int, startTime time.Time) {
	if r.Metrics == nil {
		return
	}
	r.Metrics.IncCounterVec(UserRequestsTotal, operation, strconv.Itoa(code))
	r.Metrics.ObserveHistogramVec(UserRequestDurationSeconds, time.Since(startTime).Seconds(), operation)
}

// hasMediaType reports whether the request Content-Type is one of allowed,
// ignoring parameters such as charset.
func hasMediaType(req *http.Request, allowed ...string) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(ContentType))
	if err != nil {
		return false
	}
	for _, a := range allowed {
		if mediaType == a {
			return true
		}
	}
	return false
}

// absoluteURL rebuilds the absolute URL of path on the host the request
// came in on. rawPath is the escaped form of path.
func absoluteURL(req *http.Request, path, rawPath string) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: req.Host, Path: path, RawPath: rawPath}
	return u.String()
}

package routes

import "net/http"

// Endpoint binds one method and path pattern to a handler.
type Endpoint struct {
	Method    string
	Pattern   string
	Operation string
	Handler   http.HandlerFunc
}

// Endpoints lists every user directory route under basePath. The
// trailing-slash forms reach the single-user handlers with an empty
// username so they answer 404.
func (r *Route) Endpoints(basePath string) []Endpoint {
	item := basePath + "/{" + UsernameParam + "}"
	empty := basePath + "/"

	return []Endpoint{
		{Method: http.MethodGet, Pattern: basePath, Operation: OperationList, Handler: r.List},
		{Method: http.MethodPost, Pattern: basePath, Operation: OperationCreate, Handler: r.Create},
		{Method: http.MethodGet, Pattern: item, Operation: OperationGet, Handler: r.Get},
		{Method: http.MethodPut, Pattern: item, Operation: OperationReplace, Handler: r.Replace},
		{Method: http.MethodPost, Pattern: item, Operation: OperationModify, Handler: r.Modify},
		{Method: http.MethodDelete, Pattern: item, Operation: OperationDelete, Handler: r.Delete},
		{Method: http.MethodGet, Pattern: empty, Operation: OperationGet, Handler: r.Get},
		{Method: http.MethodPost, Pattern: empty, Operation: OperationModify, Handler: r.Modify},
		{Method: http.MethodDelete, Pattern: empty, Operation: OperationDelete, Handler: r.Delete},
	}
}

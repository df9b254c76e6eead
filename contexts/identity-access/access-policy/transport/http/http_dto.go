package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RoleChangeRequest struct {
	Identity string `json:"identity"`
}

type RoleChangeResponse struct {
	Status   string `json:"status"`
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

type ListRolesResponse struct {
	Status   string   `json:"status"`
	Identity string   `json:"identity"`
	Roles    []string `json:"roles"`
}

package directory

type SearchRequest struct {
	Term string `json:"term" validate:"max=200"`
}

type SortRequest struct {
	Key string `json:"key" validate:"required,oneof=id first_name last_name email"`
}

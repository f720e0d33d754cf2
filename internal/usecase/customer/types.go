package customer

type Customer struct {
	ID     string `json:"id"`
	First  string `json:"first"`
	Last   string `json:"last"`
	Mobile string `json:"mobile"`
}

type CreateInput struct {
	First  string `json:"first"`
	Last   string `json:"last"`
	Mobile string `json:"mobile"`
}

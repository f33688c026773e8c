package request

type TableRequest struct {
	Label string `json:"label"`
	Seats int    `json:"seats"`
}

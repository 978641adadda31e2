package delete_offering

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

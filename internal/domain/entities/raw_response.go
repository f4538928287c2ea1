package entities

// RawResponse is what a refund transport hands back for one HTTP round trip.
//
// Body holds the payload of a 2xx answer and ErrorBody the payload of any other status,
// mirroring how the gateway SDK splits the two. Message is the HTTP reason phrase.
type RawResponse struct {
	StatusCode int
	Message    string
	Body       []byte
	ErrorBody  []byte
}

func (r RawResponse) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

package httptransport

// CleanRequest is the wire shape for every cleaning endpoint. Value is
// deliberately untyped: non-string JSON scalars are classified as a type
// mismatch by the core rather than coerced here.
type CleanRequest struct {
	Value any `json:"value"`
}

// CleanResponse carries the canonical form of an accepted value.
type CleanResponse struct {
	Value string `json:"value"`
}

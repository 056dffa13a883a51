package decoder

// Record is a decoded record together with the tag and shape it was decoded by.
// Value is a pointer to the shape's struct type and is not shared with the input buffer.
type Record struct {
	Program       string        `json:"program"`
	Namespace     Namespace     `json:"namespace"`
	Shape         string        `json:"shape"`
	Discriminator Discriminator `json:"discriminator"`
	Value         any           `json:"value"`
}

package model

// ElementObservation is a snapshot of one element instance.
type ElementObservation struct {
	// Attribs are the sorted attribute keys of the instance.
	Attribs []string `json:"attribs"`

	// Children are the tags of the direct children in document order.
	Children []string `json:"children"`

	// Value is the whitespace-stripped text of the instance, nil if the
	// element had no text at all.
	Value *string `json:"value"`
}

// Observations is the raw evidence collected while walking documents.
// Values keep their arrival order.
type Observations struct {
	// Attribs maps attribute names to their raw values.
	Attribs map[string][]string `json:"attribs"`

	// Elements maps tags to snapshots of their instances.
	Elements map[string][]ElementObservation `json:"elements"`
}

// NewObservations creates an empty observation log.
func NewObservations() *Observations {
	return &Observations{
		Attribs:  make(map[string][]string),
		Elements: make(map[string][]ElementObservation),
	}
}

// AddElement appends a snapshot of an element instance.
func (o *Observations) AddElement(tag string, obs ElementObservation) {
	o.Elements[tag] = append(o.Elements[tag], obs)
}

// AddAttribute appends a raw attribute value.
func (o *Observations) AddAttribute(name, val string) {
	o.Attribs[name] = append(o.Attribs[name], val)
}

// Len returns the total number of element and attribute observations.
func (o *Observations) Len() (elements int, attribs int) {
	for _, v := range o.Elements {
		elements += len(v)
	}
	for _, v := range o.Attribs {
		attribs += len(v)
	}
	return elements, attribs
}

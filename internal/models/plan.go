package models

// Plan is a subscription tier shown to professionals. Display data only.
type Plan struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Price       string   `json:"price" yaml:"price" validate:"required"`
	Period      string   `json:"period" yaml:"period"`
	Fee         string   `json:"fee" yaml:"fee"`
	Color       string   `json:"color,omitempty" yaml:"color"`
	ButtonColor string   `json:"button_color,omitempty" yaml:"buttonColor"`
	Features    []string `json:"features" yaml:"features"`
	Recommended bool     `json:"recommended" yaml:"recommended"`
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	out.Features = append([]string(nil), p.Features...)
	return out
}

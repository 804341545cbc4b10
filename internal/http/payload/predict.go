package payload

import (
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type PredictRequest struct {
	URL string `json:"url"`
}

func (p *PredictRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.URL, is.URL),
	)
}

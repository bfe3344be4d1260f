package shared

import (
	"github.com/go-playground/form"
)

// Decoder decodes url.Values into `form`-tagged structs. Unknown keys are
// ignored, since HTML forms carry buttons the DTOs do not model.
var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	return d
}

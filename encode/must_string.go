package encode

import (
	"bytes"

	"github.com/signadot/menutree/ir"
)

func MustString(t *ir.Tree, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

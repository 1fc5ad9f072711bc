package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Release bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("MENUTREE_DEBUG_PARSE")
	d.Encode = boolEnv("MENUTREE_DEBUG_ENCODE")
	d.Release = boolEnv("MENUTREE_DEBUG_RELEASE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Release() bool {
	return d.Release
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}

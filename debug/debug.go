package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Apply bool
	Write bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("XE_DEBUG_EVAL")
	d.Apply = boolEnv("XE_DEBUG_APPLY")
	d.Write = boolEnv("XE_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Apply() bool {
	return d.Apply
}
func Write() bool {
	return d.Write
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

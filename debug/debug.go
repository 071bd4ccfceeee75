package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Write bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("JDOC_DEBUG_LOAD")
	d.Write = boolEnv("JDOC_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Write() bool {
	return d.Write
}

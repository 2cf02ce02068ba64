package helper

import (
	"runtime"
	"strings"
)

// GetFuncName returns the fully qualified name of the calling function.
func GetFuncName() string {
	pc, _, _, _ := runtime.Caller(1)
	return runtime.FuncForPC(pc).Name()
}

// ShortFuncName trims the package path from a name returned by GetFuncName,
// e.g. "github.com/x/userservice.(*UserService).GetUser" becomes
// "(*UserService).GetUser".
func ShortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

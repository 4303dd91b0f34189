package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mustCopy maps a read model onto a response struct. copier only fails on a
// programming error such as a non-pointer destination or incompatible field
// types, so the panic is caught by gin's recovery middleware rather than
// silently serving a half-filled response.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(fmt.Sprintf("response mapping failed: %v", err))
	}
}

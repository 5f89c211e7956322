//go:build extra

package good

// Extra is only visible with the extra build tag.
type Extra struct {
	On bool
}

//go:build extra

package derived

type Extra struct {
	On bool
}

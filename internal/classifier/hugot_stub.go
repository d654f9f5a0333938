//go:build !ORT

package classifier

import (
	"errors"

	"github.com/spacesedan/sentiboard/config"
)

var errNoORT = errors.New("binary built without ONNX Runtime support (build with -tags ORT)")

// NewHugot always fails in builds without ONNX Runtime.
func NewHugot(modelDir, model string) (Classifier, error) {
	return nil, &Error{Kind: KindUnavailable, Backend: config.BackendHugot, Err: errNoORT}
}

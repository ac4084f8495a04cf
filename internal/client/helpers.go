package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// unmarshalResponse decodes a response body into out, reporting a decode
// failure as a serialization-kind error carrying the response status.
func unmarshalResponse(statusCode int, body []byte, out interface{}) error {
	err := json.Unmarshal(body, out)
	if err != nil {
		return &gitea.Error{
			Kind:       gitea.ErrorKindSerialization,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("decoding response body: %v", err),
		}
	}

	return nil
}

// existence interprets the outcome of a probe endpoint: 2xx means yes,
// 404 means no, anything else is a real error.
func existence(err error) (bool, error) {
	if err == nil {
		return true, nil
	}

	apiErr := gitea.AsError(err)
	if apiErr != nil && apiErr.StatusCode == http.StatusNotFound {
		return false, nil
	}

	return false, err
}

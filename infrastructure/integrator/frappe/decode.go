package frappe

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

func unmarshal(data json.RawMessage, out any) error {
	if len(data) == 0 {
		return nil
	}

	return errors.Wrap(jsonCodec.Unmarshal(data, out), "erro ao decodificar registros do Frappe")
}

package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The origination service has no generated protobuf messages; handlers
// exchange plain structs, so calls negotiate the "json" codec instead of
// proto.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }

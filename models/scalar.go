package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Scalar is a loosely typed profile field such as age or budget. Numbers and
// strings are kept as stored. An absent value encodes to JSON as "".
type Scalar struct {
	value interface{} // nil, json.Number, string or bool
}

// IntScalar returns a Scalar holding n
func IntScalar(n int) Scalar { return Scalar{value: json.Number(strconv.Itoa(n))} }

// NumberScalar returns a Scalar holding a decimal literal such as "850.5"
func NumberScalar(n string) Scalar { return Scalar{value: json.Number(n)} }

// StringScalar returns a Scalar holding s
func StringScalar(s string) Scalar { return Scalar{value: s} }

// IsZero reports whether the value is absent
func (s Scalar) IsZero() bool { return s.value == nil }

// Value returns the held value: nil, json.Number, string or bool
func (s Scalar) Value() interface{} { return s.value }

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.value == nil {
		return []byte(`""`), nil
	}
	return json.Marshal(s.value)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v.(type) {
	case nil, json.Number, string, bool:
		s.value = v
		return nil
	default:
		return fmt.Errorf("scalar: unsupported JSON value %s", data)
	}
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler
func (s Scalar) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	switch v := s.value.(type) {
	case json.Number:
		return &types.AttributeValueMemberN{Value: v.String()}, nil
	case string:
		return &types.AttributeValueMemberS{Value: v}, nil
	case bool:
		return &types.AttributeValueMemberBOOL{Value: v}, nil
	default:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler
func (s *Scalar) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		s.value = json.Number(v.Value)
	case *types.AttributeValueMemberS:
		s.value = v.Value
	case *types.AttributeValueMemberBOOL:
		s.value = v.Value
	case *types.AttributeValueMemberNULL:
		s.value = nil
	default:
		return fmt.Errorf("scalar: unsupported attribute type %T", av)
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler
func (s Scalar) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v := s.value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return bson.MarshalValue(n)
		}
		f, err := v.Float64()
		if err != nil {
			return 0, nil, fmt.Errorf("scalar: invalid number %q: %w", v, err)
		}
		return bson.MarshalValue(f)
	default:
		return bson.MarshalValue(v)
	}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler
func (s *Scalar) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeInt32:
		s.value = json.Number(strconv.FormatInt(int64(rv.Int32()), 10))
	case bson.TypeInt64:
		s.value = json.Number(strconv.FormatInt(rv.Int64(), 10))
	case bson.TypeDouble:
		f := rv.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			s.value = nil
			return nil
		}
		s.value = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	case bson.TypeDecimal128:
		s.value = json.Number(rv.Decimal128().String())
	case bson.TypeString:
		s.value = rv.StringValue()
	case bson.TypeBoolean:
		s.value = rv.Boolean()
	case bson.TypeNull, bson.TypeUndefined:
		s.value = nil
	default:
		return fmt.Errorf("scalar: unsupported bson type %s", t)
	}
	return nil
}

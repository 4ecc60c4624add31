package utils

import (
	"roommate_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractStringList reads an ordered list (L) of strings. Non-string elements
// keep their position as "". Any other attribute type, string sets included
// since they carry no order, is reported as ListMalformed.
func ExtractStringList(item map[string]types.AttributeValue, field string) ([]string, models.ListState) {
	attr, ok := item[field]
	if !ok {
		return nil, models.ListAbsent
	}

	switch v := attr.(type) {
	case *types.AttributeValueMemberL:
		values := make([]string, 0, len(v.Value))
		for _, elem := range v.Value {
			var value string
			if s, ok := elem.(*types.AttributeValueMemberS); ok {
				value = s.Value
			}
			values = append(values, value)
		}
		return values, models.ListPresent
	default:
		return nil, models.ListMalformed
	}
}

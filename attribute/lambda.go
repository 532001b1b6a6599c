/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/suparena/streamevents/errors"
)

// FromLambda converts an attribute value from the aws-lambda-go events package.
func FromLambda(av events.DynamoDBAttributeValue) (Value, error) {
	switch av.DataType() {
	case events.DataTypeBinary:
		b := av.Binary()
		if b == nil {
			b = []byte{}
		}
		return Binary(b), nil
	case events.DataTypeBoolean:
		return Bool(av.Boolean()), nil
	case events.DataTypeBinarySet:
		return BinarySet(av.BinarySet()), nil
	case events.DataTypeList:
		elems := av.List()
		out := make(List, len(elems))
		for i, elem := range elems {
			v, err := FromLambda(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = v
		}
		return out, nil
	case events.DataTypeMap:
		item, err := ItemFromLambda(av.Map())
		if err != nil {
			return nil, errors.WithPath(err, "M")
		}
		return Map(item), nil
	case events.DataTypeNumber:
		return Number(av.Number()), nil
	case events.DataTypeNumberSet:
		return NumberSet(av.NumberSet()), nil
	case events.DataTypeNull:
		return Null(true), nil
	case events.DataTypeString:
		return String(av.String()), nil
	case events.DataTypeStringSet:
		return StringSet(av.StringSet()), nil
	}
	return nil, errors.NewUnknownVariantKeyError(fmt.Sprintf("data type %d", av.DataType()))
}

// ToLambda converts v into the aws-lambda-go representation. That type only
// models NULL as true, so Null(false) is written as a true null.
func ToLambda(v Value) (events.DynamoDBAttributeValue, error) {
	switch tv := v.(type) {
	case Binary:
		return events.NewBinaryAttribute([]byte(tv)), nil
	case Bool:
		return events.NewBooleanAttribute(bool(tv)), nil
	case BinarySet:
		return events.NewBinarySetAttribute([][]byte(tv)), nil
	case List:
		out := make([]events.DynamoDBAttributeValue, len(tv))
		for i, elem := range tv {
			av, err := ToLambda(elem)
			if err != nil {
				return events.DynamoDBAttributeValue{}, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = av
		}
		return events.NewListAttribute(out), nil
	case Map:
		out, err := ItemToLambda(Item(tv))
		if err != nil {
			return events.DynamoDBAttributeValue{}, errors.WithPath(err, "M")
		}
		return events.NewMapAttribute(out), nil
	case Number:
		return events.NewNumberAttribute(string(tv)), nil
	case NumberSet:
		return events.NewNumberSetAttribute([]string(tv)), nil
	case Null:
		return events.NewNullAttribute(), nil
	case String:
		return events.NewStringAttribute(string(tv)), nil
	case StringSet:
		return events.NewStringSetAttribute([]string(tv)), nil
	}
	return events.DynamoDBAttributeValue{}, errors.ErrMissingVariant
}

// ItemFromLambda converts an aws-lambda-go image into an Item. A nil map stays nil.
func ItemFromLambda(m map[string]events.DynamoDBAttributeValue) (Item, error) {
	if m == nil {
		return nil, nil
	}
	out := make(Item, len(m))
	for name, av := range m {
		v, err := FromLambda(av)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = v
	}
	return out, nil
}

// ItemToLambda converts an Item into an aws-lambda-go image. A nil Item stays nil.
func ItemToLambda(item Item) (map[string]events.DynamoDBAttributeValue, error) {
	if item == nil {
		return nil, nil
	}
	out := make(map[string]events.DynamoDBAttributeValue, len(item))
	for name, v := range item {
		av, err := ToLambda(v)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = av
	}
	return out, nil
}

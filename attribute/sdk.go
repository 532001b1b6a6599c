/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/suparena/streamevents/errors"
)

// ToDynamoDB converts v into the DynamoDB SDK union.
func ToDynamoDB(v Value) (types.AttributeValue, error) {
	switch tv := v.(type) {
	case Binary:
		return &types.AttributeValueMemberB{Value: []byte(tv)}, nil
	case Bool:
		return &types.AttributeValueMemberBOOL{Value: bool(tv)}, nil
	case BinarySet:
		return &types.AttributeValueMemberBS{Value: [][]byte(tv)}, nil
	case List:
		out := make([]types.AttributeValue, len(tv))
		for i, elem := range tv {
			av, err := ToDynamoDB(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = av
		}
		return &types.AttributeValueMemberL{Value: out}, nil
	case Map:
		out, err := ItemToDynamoDB(Item(tv))
		if err != nil {
			return nil, errors.WithPath(err, "M")
		}
		return &types.AttributeValueMemberM{Value: out}, nil
	case Number:
		return &types.AttributeValueMemberN{Value: string(tv)}, nil
	case NumberSet:
		return &types.AttributeValueMemberNS{Value: []string(tv)}, nil
	case Null:
		return &types.AttributeValueMemberNULL{Value: bool(tv)}, nil
	case String:
		return &types.AttributeValueMemberS{Value: string(tv)}, nil
	case StringSet:
		return &types.AttributeValueMemberSS{Value: []string(tv)}, nil
	}
	return nil, errors.ErrMissingVariant
}

// FromDynamoDB converts a DynamoDB SDK attribute value into a Value.
func FromDynamoDB(av types.AttributeValue) (Value, error) {
	switch tv := av.(type) {
	case *types.AttributeValueMemberB:
		return Binary(tv.Value), nil
	case *types.AttributeValueMemberBOOL:
		return Bool(tv.Value), nil
	case *types.AttributeValueMemberBS:
		return BinarySet(tv.Value), nil
	case *types.AttributeValueMemberL:
		out := make(List, len(tv.Value))
		for i, elem := range tv.Value {
			v, err := FromDynamoDB(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = v
		}
		return out, nil
	case *types.AttributeValueMemberM:
		item, err := ItemFromDynamoDB(tv.Value)
		if err != nil {
			return nil, errors.WithPath(err, "M")
		}
		return Map(item), nil
	case *types.AttributeValueMemberN:
		return Number(tv.Value), nil
	case *types.AttributeValueMemberNS:
		return NumberSet(tv.Value), nil
	case *types.AttributeValueMemberNULL:
		return Null(tv.Value), nil
	case *types.AttributeValueMemberS:
		return String(tv.Value), nil
	case *types.AttributeValueMemberSS:
		return StringSet(tv.Value), nil
	case *types.UnknownUnionMember:
		return nil, errors.NewUnknownVariantKeyError(tv.Tag)
	case nil:
		return nil, errors.ErrMissingVariant
	}
	return nil, errors.NewUnknownVariantKeyError(fmt.Sprintf("%T", av))
}

// ItemToDynamoDB converts an Item into the attribute map used by the DynamoDB SDK.
func ItemToDynamoDB(item Item) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(item))
	for name, v := range item {
		av, err := ToDynamoDB(v)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = av
	}
	return out, nil
}

// ItemFromDynamoDB converts a DynamoDB SDK attribute map into an Item.
func ItemFromDynamoDB(m map[string]types.AttributeValue) (Item, error) {
	out := make(Item, len(m))
	for name, av := range m {
		v, err := FromDynamoDB(av)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = v
	}
	return out, nil
}

// FromStreams converts a value returned by the DynamoDB Streams GetRecords API.
func FromStreams(av streamtypes.AttributeValue) (Value, error) {
	switch tv := av.(type) {
	case *streamtypes.AttributeValueMemberB:
		return Binary(tv.Value), nil
	case *streamtypes.AttributeValueMemberBOOL:
		return Bool(tv.Value), nil
	case *streamtypes.AttributeValueMemberBS:
		return BinarySet(tv.Value), nil
	case *streamtypes.AttributeValueMemberL:
		out := make(List, len(tv.Value))
		for i, elem := range tv.Value {
			v, err := FromStreams(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = v
		}
		return out, nil
	case *streamtypes.AttributeValueMemberM:
		item, err := ItemFromStreams(tv.Value)
		if err != nil {
			return nil, errors.WithPath(err, "M")
		}
		return Map(item), nil
	case *streamtypes.AttributeValueMemberN:
		return Number(tv.Value), nil
	case *streamtypes.AttributeValueMemberNS:
		return NumberSet(tv.Value), nil
	case *streamtypes.AttributeValueMemberNULL:
		return Null(tv.Value), nil
	case *streamtypes.AttributeValueMemberS:
		return String(tv.Value), nil
	case *streamtypes.AttributeValueMemberSS:
		return StringSet(tv.Value), nil
	case *streamtypes.UnknownUnionMember:
		return nil, errors.NewUnknownVariantKeyError(tv.Tag)
	case nil:
		return nil, errors.ErrMissingVariant
	}
	return nil, errors.NewUnknownVariantKeyError(fmt.Sprintf("%T", av))
}

// ToStreams converts v into the DynamoDB Streams SDK union.
func ToStreams(v Value) (streamtypes.AttributeValue, error) {
	switch tv := v.(type) {
	case Binary:
		return &streamtypes.AttributeValueMemberB{Value: []byte(tv)}, nil
	case Bool:
		return &streamtypes.AttributeValueMemberBOOL{Value: bool(tv)}, nil
	case BinarySet:
		return &streamtypes.AttributeValueMemberBS{Value: [][]byte(tv)}, nil
	case List:
		out := make([]streamtypes.AttributeValue, len(tv))
		for i, elem := range tv {
			av, err := ToStreams(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
			out[i] = av
		}
		return &streamtypes.AttributeValueMemberL{Value: out}, nil
	case Map:
		out := make(map[string]streamtypes.AttributeValue, len(tv))
		for name, elem := range tv {
			av, err := ToStreams(elem)
			if err != nil {
				return nil, errors.WithPath(errors.WithPath(err, name), "M")
			}
			out[name] = av
		}
		return &streamtypes.AttributeValueMemberM{Value: out}, nil
	case Number:
		return &streamtypes.AttributeValueMemberN{Value: string(tv)}, nil
	case NumberSet:
		return &streamtypes.AttributeValueMemberNS{Value: []string(tv)}, nil
	case Null:
		return &streamtypes.AttributeValueMemberNULL{Value: bool(tv)}, nil
	case String:
		return &streamtypes.AttributeValueMemberS{Value: string(tv)}, nil
	case StringSet:
		return &streamtypes.AttributeValueMemberSS{Value: []string(tv)}, nil
	}
	return nil, errors.ErrMissingVariant
}

// ItemFromStreams converts a DynamoDB Streams record image into an Item.
func ItemFromStreams(m map[string]streamtypes.AttributeValue) (Item, error) {
	out := make(Item, len(m))
	for name, av := range m {
		v, err := FromStreams(av)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = v
	}
	return out, nil
}

// UnmarshalItem decodes item into out, a pointer to a struct or map, using the
// SDK attributevalue rules (dynamodbav struct tags).
func UnmarshalItem(item Item, out any) error {
	av, err := ItemToDynamoDB(item)
	if err != nil {
		return err
	}
	if err := attributevalue.UnmarshalMap(av, out); err != nil {
		return fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return nil
}

// MarshalItem builds an Item from a Go struct or map using the SDK attributevalue rules.
func MarshalItem(in any) (Item, error) {
	av, err := attributevalue.MarshalMap(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}
	return ItemFromDynamoDB(av)
}

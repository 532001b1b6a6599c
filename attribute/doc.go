/*
Package attribute implements the typed attribute values found in DynamoDB
stream records and their JSON wire form.

A wire object carries exactly one type key naming the variant:

	{"S": "Hello"}
	{"N": "123456789012345678901234567890.5"}
	{"B": "aGk="}
	{"M": {"Name": {"S": "Joe"}, "Tags": {"SS": ["a", "b"]}}}

Each variant is its own Go type (Binary, Bool, BinarySet, List, Map, Number,
NumberSet, Null, String, StringSet) behind the Value interface, so a decoded
value can never hold zero or two variants. Numbers stay as decimal text.

Decoding:

	v, err := attribute.Decode([]byte(`{"L":[{"S":"a"},{"N":"1"}]}`))
	item, err := attribute.DecodeItem(raw, attribute.WithMaxDepth(8))

Errors carry the path of the offending member, for example
M.address.M.tags.L[1].N, and match the sentinels of the errors package.

Encoding:

	data, err := attribute.Encode(attribute.Map{"Id": attribute.Number("101")})

SDK interop:
Items convert to and from the aws-sdk-go-v2 DynamoDB and DynamoDB Streams
unions and the aws-lambda-go events type. UnmarshalItem decodes an image
straight into a tagged struct:

	var order Order
	err := attribute.UnmarshalItem(record.Change.NewImage, &order)
*/
package attribute

/*
Package dynamodbevent decodes and encodes the DynamoDB stream payload a Lambda
function receives.

A payload is {"Records": [...]} where each record carries the operation kind,
the stream coordinates and the item images as typed attribute values:

	ev, err := dynamodbevent.Decode(payload)
	if err != nil {
	    return err
	}
	for _, r := range ev.Records {
	    if r.IsTimeToLiveExpiry() {
	        continue
	    }
	    var order Order
	    if err := r.Change.UnmarshalNewImage(&order); err != nil {
	        return err
	    }
	}

Decoding is all or nothing. The first failure is returned with its location,
for example Records[1].dynamodb.NewImage.Tags.L[0], and no partial event is
produced. Only INSERT, MODIFY and REMOVE are accepted as eventName.

Encode writes the same wire format back. Images that were absent stay absent
and present images are written even when empty, so Decode(Encode(e)) equals e.
*/
package dynamodbevent

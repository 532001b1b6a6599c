/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

// Item maps attribute names to values. Stream records use it for keys and for
// the before and after images of an item.
type Item map[string]Value

// MarshalJSON renders the item as an object of wire objects. A nil Item renders as null.
func (it Item) MarshalJSON() ([]byte, error) {
	if it == nil {
		return []byte("null"), nil
	}
	return EncodeItem(it)
}

// UnmarshalJSON decodes the item with default options.
func (it *Item) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*it = nil
		return nil
	}
	item, err := DecodeItem(data)
	if err != nil {
		return err
	}
	*it = item
	return nil
}

// Get returns the named attribute, or nil when absent.
func (it Item) Get(name string) Value {
	return it[name]
}

// ItemEqual reports whether a and b hold the same attributes with equal values.
func ItemEqual(a, b Item) bool {
	return mapsEqual(a, b)
}

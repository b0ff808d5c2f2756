package move

import (
	"encoding/json"
	"fmt"
)

// Option is the JSON form of 0x1::option::Option<T>, {"vec":[]} or {"vec":[value]}.
// It is normalized while unmarshalling, so callers only see Get.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// OrZero returns the value or the zero value of T.
func (o Option[T]) OrZero() T {
	return o.value
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Vec []T `json:"vec"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	switch len(raw.Vec) {
	case 0:
		*o = None[T]()
	case 1:
		*o = Some(raw.Vec[0])
	default:
		return fmt.Errorf("option: vec holds %d elements", len(raw.Vec))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	vec := []T{}
	if o.ok {
		vec = append(vec, o.value)
	}
	return json.Marshal(struct {
		Vec []T `json:"vec"`
	}{Vec: vec})
}

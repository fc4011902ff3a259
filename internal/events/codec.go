package events

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when decoding a record whose kind is not part
// of the vocabulary.
var ErrUnknownKind = errors.New("unknown event kind")

// Record is the journal form of an event.
type Record struct {
	Kind Kind      `yaml:"kind"`
	Data yaml.Node `yaml:"data"`
}

var decoders = map[Kind]func(*yaml.Node) (Event, error){
	KindSetName:        decodeAs[SetName],
	KindMarkComplete:   decodeAs[MarkComplete],
	KindMarkIncomplete: decodeAs[MarkIncomplete],
	KindSetStartDate:   decodeAs[SetStartDate],
	KindSetDueDate:     decodeAs[SetDueDate],
	KindAddContext:     decodeAs[AddContext],
	KindRemoveContext:  decodeAs[RemoveContext],
	KindAddProject:     decodeAs[AddProject],
	KindRemoveProject:  decodeAs[RemoveProject],
	KindAddArea:        decodeAs[AddArea],
	KindRemoveArea:     decodeAs[RemoveArea],
	KindSetMoneyNeeded: decodeAs[SetMoneyNeeded],
	KindSetWeather:     decodeAs[SetWeather],
	KindSetTimeOfDay:   decodeAs[SetTimeOfDay],
	KindSetParentTask:  decodeAs[SetParentTask],
	KindAddTask:        decodeAs[AddTask],
	KindRemoveTask:     decodeAs[RemoveTask],
}

func decodeAs[T Event](n *yaml.Node) (Event, error) {
	var e T
	if err := n.Decode(&e); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode converts an event to its journal record.
func Encode(e Event) (Record, error) {
	var r Record
	if e == nil {
		return r, fmt.Errorf("cannot encode nil event")
	}
	if err := r.Data.Encode(e); err != nil {
		return r, fmt.Errorf("failed to encode %s event: %w", e.Kind(), err)
	}
	r.Kind = e.Kind()
	return r, nil
}

// Decode converts a journal record back to its event.
func Decode(r Record) (Event, error) {
	dec, ok := decoders[r.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	e, err := dec(&r.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", r.Kind, err)
	}
	return e, nil
}

// EncodeAll encodes a sequence of events, preserving order.
func EncodeAll(evs []Event) ([]Record, error) {
	records := make([]Record, 0, len(evs))
	for i, e := range evs {
		r, err := Encode(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// DecodeAll decodes a sequence of records, preserving order. It stops at the
// first record that fails and reports its index.
func DecodeAll(records []Record) ([]Event, error) {
	evs := make([]Event, 0, len(records))
	for i, r := range records {
		e, err := Decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		evs = append(evs, e)
	}
	return evs, nil
}

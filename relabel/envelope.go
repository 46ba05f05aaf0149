package relabel

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Envelope layout: magic byte, version byte, then one value. Struct values
// encode as 'O', uvarint name length, name bytes, uvarint field count, and
// name/value pairs; everything else encodes as 'J' plus length-prefixed
// JSON. Every struct, nested ones included, carries its own tag, so the
// allow list governs each type reachable in the stream.
const (
	envMagic   = 0x9C
	envVersion = 1

	tagObject = 'O'
	tagJSON   = 'J'
)

var ErrBadEnvelope = errors.New("malformed envelope bytes")

func marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr) {
		if rv.IsNil() {
			rv = reflect.Value{}
			break
		}
		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, errors.New("only struct values have a relabelable representation")
	}

	var buf bytes.Buffer
	buf.WriteByte(envMagic)
	buf.WriteByte(envVersion)

	err := encodeValue(&buf, rv)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v reflect.Value) error {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	if v.IsValid() && v.Kind() == reflect.Struct && hasExportedFields(v.Type()) {
		return encodeObject(buf, v)
	}

	data := []byte("null")
	if v.IsValid() {
		var err error
		data, err = json.Marshal(v.Interface())
		if err != nil {
			return fmt.Errorf("field payload: %w", err)
		}
	}

	buf.WriteByte(tagJSON)
	writeUvarint(buf, uint64(len(data)))
	buf.Write(data)

	return nil
}

func encodeObject(buf *bytes.Buffer, v reflect.Value) error {
	t := v.Type()

	buf.WriteByte(tagObject)
	writeString(buf, registeredName(t))

	var names []string
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			names = append(names, t.Field(i).Name)
		}
	}

	writeUvarint(buf, uint64(len(names)))

	for _, name := range names {
		writeString(buf, name)

		sf, _ := t.FieldByName(name)

		err := encodeValue(buf, v.FieldByIndex(sf.Index))
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), name, err)
		}
	}

	return nil
}

// rewriteTag replaces exactly the top-level type tag, length prefix and
// name bytes both, leaving the rest of the stream untouched.
func rewriteTag(data []byte, newName string) ([]byte, error) {
	if len(data) < 4 || data[0] != envMagic || data[1] != envVersion || data[2] != tagObject {
		return nil, ErrBadEnvelope
	}

	r := bytes.NewReader(data[3:])

	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, ErrBadEnvelope
	}

	nameStart := 3 + (len(data) - 3 - r.Len())
	nameEnd := nameStart + int(n)
	if nameEnd > len(data) {
		return nil, ErrBadEnvelope
	}

	out := make([]byte, 0, len(data)-int(n)+len(newName))
	out = append(out, data[:3]...)
	out = appendUvarint(out, uint64(len(newName)))
	out = append(out, newName...)
	out = append(out, data[nameEnd:]...)

	return out, nil
}

func unmarshal(data []byte, allow AllowList) (reflect.Value, error) {
	if len(data) < 3 || data[0] != envMagic || data[1] != envVersion {
		return reflect.Value{}, ErrBadEnvelope
	}

	r := bytes.NewReader(data[2:])

	v, err := decodeValue(r, nil, allow)
	if err != nil {
		return reflect.Value{}, err
	}

	if !v.IsValid() || r.Len() != 0 {
		return reflect.Value{}, ErrBadEnvelope
	}

	return v, nil
}

// decodeValue reads one value. want is the declared type to decode JSON
// payloads into; nil means the value has no slot to land in and is read
// only to enforce the allow list. Object values ignore want: their type
// comes from their own tag, that is the point of relabeling.
func decodeValue(r *bytes.Reader, want reflect.Type, allow AllowList) (reflect.Value, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return reflect.Value{}, ErrBadEnvelope
	}

	switch tag {
	case tagObject:
		return decodeObject(r, allow)

	case tagJSON:
		payload, err := readBytes(r)
		if err != nil {
			return reflect.Value{}, err
		}

		if want == nil {
			return reflect.Value{}, nil
		}

		p := reflect.New(want)

		err = json.Unmarshal(payload, p.Interface())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s payload: %s", ErrBadEnvelope, want, err)
		}

		return p.Elem(), nil

	default:
		return reflect.Value{}, ErrBadEnvelope
	}
}

func decodeObject(r *bytes.Reader, allow AllowList) (reflect.Value, error) {
	name, err := readString(r)
	if err != nil {
		return reflect.Value{}, err
	}

	if !allow.Permits(name) {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrDisallowedType, name)
	}

	t, ok := lookup(name)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	inst := reflect.New(t).Elem()

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return reflect.Value{}, ErrBadEnvelope
	}

	for i := uint64(0); i < count; i++ {
		fname, err := readString(r)
		if err != nil {
			return reflect.Value{}, err
		}

		sf, declared := t.FieldByName(fname)
		declared = declared && sf.IsExported()

		var fw reflect.Type
		if declared {
			fw = sf.Type
		}

		// undeclared fields are still decoded so nested tags stay
		// subject to the allow list, then discarded
		fv, err := decodeValue(r, fw, allow)
		if err != nil {
			return reflect.Value{}, err
		}

		if !declared || !fv.IsValid() {
			continue
		}

		slot := inst.FieldByIndex(sf.Index)
		if !fv.Type().AssignableTo(slot.Type()) {
			return reflect.Value{}, fmt.Errorf("field %s.%s: stream carries %s, declared %s",
				name, fname, fv.Type(), slot.Type())
		}
		slot.Set(fv)
	}

	return inst, nil
}

func writeUvarint(buf *bytes.Buffer, n uint64) {
	var tmp [binary.MaxVarintLen64]byte
	buf.Write(tmp[:binary.PutUvarint(tmp[:], n)])
}

func appendUvarint(out []byte, n uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	return append(out, tmp[:binary.PutUvarint(tmp[:], n)]...)
}

func writeString(buf *bytes.Buffer, s string) {
	writeUvarint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func readBytes(r *bytes.Reader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil || n > uint64(r.Len()) {
		return nil, ErrBadEnvelope
	}

	out := make([]byte, n)
	_, err = io.ReadFull(r, out)
	if err != nil {
		return nil, ErrBadEnvelope
	}

	return out, nil
}

func readString(r *bytes.Reader) (string, error) {
	b, err := readBytes(r)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}

	return false
}

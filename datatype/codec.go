package datatype

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/cache"
	"github.com/gofhir/model/choice"
)

// jsonType is the kind of a raw JSON value.
type jsonType string

const (
	kindString  jsonType = "string"
	kindBoolean jsonType = "boolean"
	kindNumber  jsonType = "number"
	kindNull    jsonType = "null"
	kindObject  jsonType = "object"
	kindArray   jsonType = "array"
)

func jsonKind(raw []byte) jsonType {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return kindNull
	}
	switch raw[0] {
	case '"':
		return kindString
	case 't', 'f':
		return kindBoolean
	case 'n':
		return kindNull
	case '{':
		return kindObject
	case '[':
		return kindArray
	default:
		return kindNumber
	}
}

func jsonKindFor(k reflect.Kind) jsonType {
	switch k {
	case reflect.Bool:
		return kindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	default:
		return kindObject
	}
}

func isNull(raw json.RawMessage) bool {
	return jsonKind(raw) == kindNull
}

// writeJSON appends v without HTML escaping and without the encoder's trailing newline.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	_ = writeJSON(buf, s)
}

type fieldKind int

const (
	fieldPlain fieldKind = iota
	fieldPrimitive
	fieldObject
	fieldChoice
	fieldResource
	fieldPrimitiveList
	fieldObjectList
	fieldResourceList
)

func (k fieldKind) isList() bool { return k >= fieldPrimitiveList }

// field is one JSON-visible member of a struct, possibly promoted from an embedded base.
type field struct {
	name  string
	index []int
	kind  fieldKind
	group choice.Group
	typ   reflect.Type
}

// plan is the decoded layout of a struct type.
type plan struct {
	fields       []field
	unknown      []int
	resourceType string
}

var (
	primitiveType    = reflect.TypeFor[primitive]()
	choiceType       = reflect.TypeFor[Choice]()
	rawMapType       = reflect.TypeFor[map[string]json.RawMessage]()
	resourceTyperTyp = reflect.TypeFor[interface{ ResourceType() string }]()

	plans      = cache.New[reflect.Type, *plan](512)
	interfaces = make(map[reflect.Type]func([]byte) (reflect.Value, error))
)

// RegisterInterface makes fields of interface type I decodable. decode builds the
// concrete value from its JSON; it is how contained resources are resolved.
// Call it from package init only.
func RegisterInterface[I any](decode func([]byte) (I, error)) {
	interfaces[reflect.TypeFor[I]()] = func(b []byte) (reflect.Value, error) {
		v, err := decode(b)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&v).Elem(), nil
	}
}

func planFor(t reflect.Type) *plan {
	p, _ := plans.GetOrLoad(t, func() (*plan, error) {
		return buildPlan(t), nil
	})
	return p
}

func buildPlan(t reflect.Type) *plan {
	p := &plan{}
	if reflect.PointerTo(t).Implements(resourceTyperTyp) {
		p.resourceType = reflect.New(t).Interface().(interface{ ResourceType() string }).ResourceType()
	}
	collectFields(p, t, nil)
	return p
}

func collectFields(p *plan, t reflect.Type, prefix []int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		tag, hasTag := sf.Tag.Lookup("fhir")
		if tag == "-" {
			continue
		}
		if sf.Anonymous && !hasTag && sf.Type.Kind() == reflect.Struct && !reflect.PointerTo(sf.Type).Implements(primitiveType) {
			collectFields(p, sf.Type, index)
			continue
		}
		if !hasTag || !sf.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if opts == "unknown" {
			if sf.Type != rawMapType {
				panic(fmt.Sprintf("datatype: %s.%s: unknown field must be map[string]json.RawMessage", t, sf.Name))
			}
			p.unknown = index
			continue
		}
		f := field{name: name, index: index, typ: sf.Type}
		if qualified, ok := strings.CutPrefix(opts, "choice="); ok {
			g, found := choice.Lookup(qualified)
			if !found || sf.Type != choiceType {
				panic(fmt.Sprintf("datatype: %s.%s: bad choice field %q", t, sf.Name, qualified))
			}
			f.kind = fieldChoice
			f.group = g
		} else {
			f.kind = classify(t, sf)
		}
		p.fields = append(p.fields, f)
	}
}

func classify(owner reflect.Type, sf reflect.StructField) fieldKind {
	t := sf.Type
	switch {
	case t.Kind() == reflect.String:
		return fieldPlain
	case t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(primitiveType):
		return fieldPrimitive
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return fieldObject
	case t.Kind() == reflect.Interface && interfaces[t] != nil:
		return fieldResource
	case t.Kind() == reflect.Slice:
		e := t.Elem()
		switch {
		case e.Kind() == reflect.Struct && reflect.PointerTo(e).Implements(primitiveType):
			return fieldPrimitiveList
		case e.Kind() == reflect.Struct:
			return fieldObjectList
		case e.Kind() == reflect.Interface && interfaces[e] != nil:
			return fieldResourceList
		}
	}
	panic(fmt.Sprintf("datatype: %s.%s: unsupported field type %s", owner, sf.Name, t))
}

// Unmarshal decodes FHIR JSON into v, which must be a pointer to a model struct.
// Shape errors are returned as *fhirmodel.ParseError and choice conflicts as
// *fhirmodel.ChoiceConflictError, both carrying the element path.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("datatype: Unmarshal needs a non-nil struct pointer, got %T", v)
	}
	return decodeStruct(data, rv.Elem())
}

// Marshal encodes v, a pointer to a model struct, as FHIR JSON. Fields are written in
// declaration order, preserved unknown keys last in key order.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("datatype: Marshal needs a non-nil struct pointer, got %T", v)
	}
	var buf bytes.Buffer
	if err := encodeStruct(&buf, rv.Elem()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeStruct(data []byte, rv reflect.Value) error {
	if k := jsonKind(data); k != kindObject {
		return fhirmodel.NewParseError("", fmt.Errorf("expected object, got %s", k))
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fhirmodel.NewParseError("", err)
	}

	p := planFor(rv.Type())
	rv.SetZero()

	if p.resourceType != "" {
		raw, ok := obj["resourceType"]
		if !ok {
			return fhirmodel.NewParseError("resourceType", errors.New("missing resourceType"))
		}
		var rt string
		if err := json.Unmarshal(raw, &rt); err != nil || rt != p.resourceType {
			return fhirmodel.NewParseError("resourceType", fmt.Errorf("expected %q, got %s", p.resourceType, raw))
		}
		delete(obj, "resourceType")
	}

	for i := range p.fields {
		if err := p.fields[i].decode(rv.FieldByIndex(p.fields[i].index), obj); err != nil {
			return err
		}
	}

	if len(obj) > 0 && p.unknown != nil {
		rv.FieldByIndex(p.unknown).Set(reflect.ValueOf(obj))
	}
	return nil
}

// take removes key from obj and returns its value. Null counts as absent.
func take(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, false
	}
	delete(obj, key)
	if isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (f *field) decode(v reflect.Value, obj map[string]json.RawMessage) error {
	switch f.kind {
	case fieldPlain:
		raw, ok := take(obj, f.name)
		if !ok {
			return nil
		}
		if k := jsonKind(raw); k != kindString {
			return fhirmodel.NewParseError(f.name, fmt.Errorf("expected string, got %s", k))
		}
		return fhirmodel.PrefixPath(f.name, json.Unmarshal(raw, v.Addr().Interface()))

	case fieldPrimitive:
		val, hasVal := take(obj, f.name)
		side, hasSide := take(obj, "_"+f.name)
		return decodePrimitive(v.Addr().Interface().(primitive), f.name, val, hasVal, side, hasSide)

	case fieldObject:
		raw, ok := take(obj, f.name)
		if !ok {
			return nil
		}
		nv := reflect.New(f.typ.Elem())
		if err := decodeStruct(raw, nv.Elem()); err != nil {
			return fhirmodel.PrefixPath(f.name, err)
		}
		v.Set(nv)
		return nil

	case fieldResource:
		raw, ok := take(obj, f.name)
		if !ok {
			return nil
		}
		r, err := interfaces[f.typ](raw)
		if err != nil {
			return fhirmodel.PrefixPath(f.name, err)
		}
		v.Set(r)
		return nil

	case fieldObjectList, fieldResourceList:
		raw, ok := take(obj, f.name)
		if !ok {
			return nil
		}
		items, err := splitArray(f.name, raw)
		if err != nil {
			return err
		}
		list := reflect.MakeSlice(f.typ, len(items), len(items))
		for i, item := range items {
			at := fmt.Sprintf("%s[%d]", f.name, i)
			if isNull(item) {
				return fhirmodel.NewParseError(at, errors.New("null array entry"))
			}
			if f.kind == fieldObjectList {
				err = decodeStruct(item, list.Index(i))
			} else {
				var r reflect.Value
				if r, err = interfaces[f.typ.Elem()](item); err == nil {
					list.Index(i).Set(r)
				}
			}
			if err != nil {
				return fhirmodel.PrefixPath(at, err)
			}
		}
		v.Set(list)
		return nil

	case fieldPrimitiveList:
		return f.decodePrimitiveList(v, obj)

	case fieldChoice:
		return f.decodeChoice(v, obj)
	}
	return nil
}

func splitArray(name string, raw json.RawMessage) ([]json.RawMessage, error) {
	if k := jsonKind(raw); k != kindArray {
		return nil, fhirmodel.NewParseError(name, fmt.Errorf("expected array, got %s", k))
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fhirmodel.NewParseError(name, err)
	}
	return items, nil
}

func decodePrimitive(p primitive, name string, val json.RawMessage, hasVal bool, side json.RawMessage, hasSide bool) error {
	if hasVal {
		if err := p.decodeValue(val); err != nil {
			return fhirmodel.PrefixPath(name, err)
		}
	}
	if hasSide {
		e := new(Element)
		if err := decodeStruct(side, reflect.ValueOf(e).Elem()); err != nil {
			return fhirmodel.PrefixPath("_"+name, err)
		}
		*p.sidecar() = e
	}
	return nil
}

// decodePrimitiveList pairs the "foo" and "_foo" arrays by index.
func (f *field) decodePrimitiveList(v reflect.Value, obj map[string]json.RawMessage) error {
	valRaw, hasVal := take(obj, f.name)
	sideRaw, hasSide := take(obj, "_"+f.name)
	if !hasVal && !hasSide {
		return nil
	}
	var vals, sides []json.RawMessage
	var err error
	if hasVal {
		if vals, err = splitArray(f.name, valRaw); err != nil {
			return err
		}
	}
	if hasSide {
		if sides, err = splitArray("_"+f.name, sideRaw); err != nil {
			return err
		}
	}
	if hasVal && hasSide && len(vals) != len(sides) {
		return fhirmodel.NewParseError("_"+f.name,
			fmt.Errorf("array length %d does not match %s length %d", len(sides), f.name, len(vals)))
	}

	n := max(len(vals), len(sides))
	list := reflect.MakeSlice(f.typ, n, n)
	for i := 0; i < n; i++ {
		var val, side json.RawMessage
		if i < len(vals) {
			val = vals[i]
		}
		if i < len(sides) {
			side = sides[i]
		}
		p := list.Index(i).Addr().Interface().(primitive)
		err := decodePrimitive(p, fmt.Sprintf("%s[%d]", f.name, i),
			val, val != nil && !isNull(val), side, side != nil && !isNull(side))
		if err != nil {
			return err
		}
	}
	v.Set(list)
	return nil
}

func (f *field) decodeChoice(v reflect.Value, obj map[string]json.RawMessage) error {
	for _, t := range f.group.Types {
		for _, k := range [2]string{f.group.Key(t), "_" + f.group.Key(t)} {
			if raw, ok := obj[k]; ok && isNull(raw) {
				delete(obj, k)
			}
		}
	}
	typ, _, err := choice.Resolve(f.group, func(k string) bool {
		_, ok := obj[k]
		return ok
	})
	if err != nil || typ == "" {
		return err
	}

	c, ok := New(typ)
	if !ok {
		return fhirmodel.NewParseError(f.group.Key(typ), fmt.Errorf("no datatype for %s", typ))
	}
	key := f.group.Key(typ)
	if p, isPrim := c.(primitive); isPrim {
		val, hasVal := take(obj, key)
		side, hasSide := take(obj, "_"+key)
		if err := decodePrimitive(p, key, val, hasVal, side, hasSide); err != nil {
			return err
		}
	} else {
		// A "_" key on a complex alternative has no meaning and stays unknown.
		raw, ok := take(obj, key)
		if !ok {
			return nil
		}
		if err := decodeStruct(raw, reflect.ValueOf(c).Elem()); err != nil {
			return fhirmodel.PrefixPath(key, err)
		}
	}
	v.Set(reflect.ValueOf(c))
	return nil
}

// encoder writes one JSON object, tracking the comma between members.
type encoder struct {
	buf   *bytes.Buffer
	first bool
}

func (e *encoder) key(k string) {
	if !e.first {
		e.buf.WriteByte(',')
	}
	e.first = false
	writeString(e.buf, k)
	e.buf.WriteByte(':')
}

func encodeStruct(buf *bytes.Buffer, rv reflect.Value) error {
	p := planFor(rv.Type())
	e := &encoder{buf: buf, first: true}
	buf.WriteByte('{')

	if p.resourceType != "" {
		e.key("resourceType")
		writeString(buf, p.resourceType)
	}
	for i := range p.fields {
		f := &p.fields[i]
		if err := f.encode(e, rv.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
	if p.unknown != nil {
		extra := rv.FieldByIndex(p.unknown).Interface().(map[string]json.RawMessage)
		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e.key(k)
			if err := json.Compact(buf, extra[k]); err != nil {
				return locate(k, err)
			}
		}
	}

	buf.WriteByte('}')
	return nil
}

func (f *field) encode(e *encoder, v reflect.Value) error {
	switch f.kind {
	case fieldPlain:
		if v.String() != "" {
			e.key(f.name)
			writeString(e.buf, v.String())
		}

	case fieldPrimitive:
		return encodePrimitive(e, f.name, v.Addr().Interface().(primitive))

	case fieldObject:
		if !v.IsNil() {
			e.key(f.name)
			return locate(f.name, encodeStruct(e.buf, v.Elem()))
		}

	case fieldResource:
		if !v.IsNil() {
			e.key(f.name)
			return locate(f.name, encodeMarshaler(e.buf, v.Interface()))
		}

	case fieldObjectList, fieldResourceList:
		if v.IsNil() {
			return nil
		}
		e.key(f.name)
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			var err error
			if f.kind == fieldObjectList {
				err = encodeStruct(e.buf, v.Index(i))
			} else {
				err = encodeMarshaler(e.buf, v.Index(i).Interface())
			}
			if err != nil {
				return locate(fmt.Sprintf("%s[%d]", f.name, i), err)
			}
		}
		e.buf.WriteByte(']')

	case fieldPrimitiveList:
		return f.encodePrimitiveList(e, v)

	case fieldChoice:
		if v.IsNil() {
			return nil
		}
		c := v.Interface().(Choice)
		typ := c.FHIRType()
		if !f.group.Allows(typ) {
			return locate(f.group.Path(), fmt.Errorf("%w: %s", ErrNotInGroup, typ))
		}
		key := f.group.Key(typ)
		if p, ok := c.(primitive); ok {
			return encodePrimitive(e, key, p)
		}
		e.key(key)
		return locate(key, encodeStruct(e.buf, reflect.ValueOf(c).Elem()))
	}
	return nil
}

func encodeMarshaler(buf *bytes.Buffer, v any) error {
	m, ok := v.(json.Marshaler)
	if !ok {
		return fmt.Errorf("%T does not marshal itself", v)
	}
	b, err := m.MarshalJSON()
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

func encodePrimitive(e *encoder, name string, p primitive) error {
	if p.hasValue() {
		e.key(name)
		if err := p.encodeValue(e.buf); err != nil {
			return locate(name, err)
		}
	}
	if side := *p.sidecar(); side != nil {
		e.key("_" + name)
		return locate("_"+name, encodeStruct(e.buf, reflect.ValueOf(side).Elem()))
	}
	return nil
}

// encodePrimitiveList writes the value array when any entry has a value (or none has
// metadata) and the "_" array when any entry has metadata, with null placeholders.
func (f *field) encodePrimitiveList(e *encoder, v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	n := v.Len()
	items := make([]primitive, n)
	anyVal, anySide := false, false
	for i := range items {
		items[i] = v.Index(i).Addr().Interface().(primitive)
		anyVal = anyVal || items[i].hasValue()
		anySide = anySide || *items[i].sidecar() != nil
	}

	if anyVal || !anySide {
		e.key(f.name)
		e.buf.WriteByte('[')
		for i, p := range items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if !p.hasValue() {
				e.buf.WriteString("null")
				continue
			}
			if err := p.encodeValue(e.buf); err != nil {
				return locate(fmt.Sprintf("%s[%d]", f.name, i), err)
			}
		}
		e.buf.WriteByte(']')
	}
	if anySide {
		e.key("_" + f.name)
		e.buf.WriteByte('[')
		for i, p := range items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			side := *p.sidecar()
			if side == nil {
				e.buf.WriteString("null")
				continue
			}
			if err := encodeStruct(e.buf, reflect.ValueOf(side).Elem()); err != nil {
				return locate(fmt.Sprintf("_%s[%d]", f.name, i), err)
			}
		}
		e.buf.WriteByte(']')
	}
	return nil
}

// MarshalError is an encode failure at an element, e.g. "note[0].author[x]".
type MarshalError struct {
	Path string
	Err  error
}

func (e *MarshalError) Error() string {
	return "datatype: marshal " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *MarshalError) Unwrap() error { return e.Err }

// locate prepends prefix to the path of an encode failure as encoding unwinds.
func locate(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var me *MarshalError
	if errors.As(err, &me) {
		path := prefix
		switch {
		case me.Path == "":
		case strings.HasPrefix(me.Path, "["):
			path += me.Path
		default:
			path += "." + me.Path
		}
		return &MarshalError{Path: path, Err: me.Err}
	}
	return &MarshalError{Path: prefix, Err: err}
}

package bind

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// TagName defines the default binding directive tag
const TagName = "bind"

var timeType = reflect.TypeOf(time.Time{})

type (
	//StructBinder binds url.Values into a struct, with one query binder
	//per exported field resolved from a registry at construction time.
	StructBinder struct {
		rType  reflect.Type
		fields []*boundField
	}

	boundField struct {
		field     *xunsafe.Field
		key       string
		required  bool
		omitEmpty bool
		binder    fieldBinder
	}

	structOptions struct {
		registry   *Registry
		caseFormat text.CaseFormat
		tagName    string
	}

	//Option customises a struct binder
	Option func(o *structOptions)
)

// WithRegistry sets the registry used to resolve field binders
func WithRegistry(registry *Registry) Option {
	return func(o *structOptions) {
		o.registry = registry
	}
}

// WithCaseFormat sets the case format applied to field names that carry no
// explicit tag name
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *structOptions) {
		o.caseFormat = caseFormat
	}
}

// WithTagName overrides the struct tag holding binding directives
func WithTagName(tagName string) Option {
	return func(o *structOptions) {
		o.tagName = tagName
	}
}

func newStructOptions(opts []Option) *structOptions {
	ret := &structOptions{
		caseFormat: text.CaseFormatLowerCamel,
		tagName:    TagName,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.registry == nil {
		ret.registry = NewRegistry()
	}
	return ret
}

// NewStructBinder creates a struct binder for the supplied struct or struct
// pointer target; it fails when a field type has no binder in the registry.
func NewStructBinder(target interface{}, opts ...Option) (*StructBinder, error) {
	options := newStructOptions(opts)
	rType := reflect.TypeOf(target)
	if rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == nil || rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct but had: %T", target)
	}
	xStruct := xunsafe.NewStruct(rType)
	result := &StructBinder{rType: rType}
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		if !structField.IsExported() {
			continue
		}
		encoded := structField.Tag.Get(options.tagName)
		if encoded == "-" {
			continue
		}
		key, required, omitEmpty := parseBindTag(encoded)
		if key == "" {
			key = options.formatName(structField.Name)
		}
		binder, err := options.resolveBinder(structField)
		if err != nil {
			return nil, err
		}
		result.fields = append(result.fields, &boundField{
			field:     &xStruct.Fields[i],
			key:       key,
			required:  required,
			omitEmpty: omitEmpty,
			binder:    binder,
		})
	}
	return result, nil
}

// Bind populates dest fields from the supplied query parameters. Absent
// optional fields keep their current value, absent required fields fail.
func (b *StructBinder) Bind(values url.Values, dest interface{}) error {
	if err := b.ensureType(dest); err != nil {
		return err
	}
	holder := xunsafe.AsPointer(dest)
	for _, field := range b.fields {
		value, ok, err := field.binder.bindValue(field.key, values)
		if err != nil {
			return err
		}
		if !ok {
			if field.required {
				return fmt.Errorf("parameter %v was required", field.key)
			}
			continue
		}
		field.field.SetValue(holder, value)
	}
	return nil
}

// Unbind renders src fields as query parameters.
func (b *StructBinder) Unbind(src interface{}) (url.Values, error) {
	if err := b.ensureType(src); err != nil {
		return nil, err
	}
	holder := xunsafe.AsPointer(src)
	result := url.Values{}
	for _, field := range b.fields {
		value := field.field.Value(holder)
		if field.omitEmpty && reflect.ValueOf(value).IsZero() {
			continue
		}
		for key, items := range field.binder.unbindValue(field.key, value) {
			result[key] = append(result[key], items...)
		}
	}
	return result, nil
}

func (b *StructBinder) ensureType(target interface{}) error {
	rType := reflect.TypeOf(target)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem() != b.rType {
		return fmt.Errorf("expected %s but had: %T", reflect.PtrTo(b.rType).String(), target)
	}
	return nil
}

func (o *structOptions) resolveBinder(structField reflect.StructField) (fieldBinder, error) {
	if structField.Type == timeType {
		if layout := timeLayout(structField.Tag); layout != "" {
			return typedBinder[time.Time]{query: PathQuery(Time(layout))}, nil
		}
	}
	binder, ok := o.registry.lookup(structField.Type)
	if !ok {
		return nil, fmt.Errorf("unsupported binder type %s for field %v", structField.Type.String(), structField.Name)
	}
	return binder, nil
}

func (o *structOptions) formatName(name string) string {
	if o.caseFormat == "" {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, o.caseFormat)
}

func parseBindTag(encoded string) (key string, required, omitEmpty bool) {
	if encoded == "" {
		return "", false, false
	}
	fragments := strings.Split(encoded, ",")
	key = fragments[0]
	for _, fragment := range fragments[1:] {
		switch fragment {
		case "required":
			required = true
		case "omitempty":
			omitEmpty = true
		}
	}
	return key, required, omitEmpty
}

func timeLayout(tag reflect.StructTag) string {
	fTag, _ := format.Parse(tag)
	if fTag == nil {
		fTag = &format.Tag{}
	}
	if fTag.TimeLayout == "" {
		fTag.TimeLayout = tag.Get("timeLayout")
	}
	return fTag.TimeLayout
}

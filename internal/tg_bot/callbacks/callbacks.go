package callbacks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxLength is the Telegram limit for callback_data.
const MaxLength = 64

const separator = ":"

type Prefix string

const (
	PrefixTarget          Prefix = "target"
	PrefixOccupation      Prefix = "occ"
	PrefixPhoto           Prefix = "photo"
	PrefixNotifications   Prefix = "notif"
	PrefixConfirm         Prefix = "confirm"
	PrefixRate            Prefix = "rate"
	PrefixSkip            Prefix = "skip"
	PrefixWorkerMenu      Prefix = "w_menu"
	PrefixEmployerMenu    Prefix = "e_menu"
	PrefixWorkerPages     Prefix = "w_pages"
	PrefixEmployerPages   Prefix = "e_pages"
	PrefixWorkerDetails   Prefix = "w_details"
	PrefixEmployerDetails Prefix = "e_details"
	PrefixWorkerControl   Prefix = "w_c"
	PrefixEmployerControl Prefix = "e_c"
	PrefixAdmin           Prefix = "a"
	PrefixNoop            Prefix = "noop"
)

// Values shared by several prefixes.
const (
	OccupationConfirm = "!"
	PhotoAdd          = "add"
	PhotoNext         = "next"
	Yes               = "yes"
	No                = "no"
	ConfirmRetype     = "retype"
)

var (
	ErrEmpty    = errors.New("callback data is empty")
	ErrTooLong  = errors.New("callback data is too long")
	ErrBadField = errors.New("callback field is invalid")
)

// Data is a decoded callback payload.
type Data struct {
	Prefix Prefix
	Fields []string
}

func Parse(data string) (Data, error) {
	if data == "" {
		return Data{}, ErrEmpty
	}

	parts := strings.Split(data, separator)

	return Data{
		Prefix: Prefix(parts[0]),
		Fields: parts[1:],
	}, nil
}

func Encode(prefix Prefix, fields ...string) (string, error) {
	for _, field := range fields {
		if strings.Contains(field, separator) {
			return "", fmt.Errorf("field %q: %w", field, ErrBadField)
		}
	}

	data := strings.Join(append([]string{string(prefix)}, fields...), separator)
	if len(data) > MaxLength {
		return "", fmt.Errorf("%d bytes: %w", len(data), ErrTooLong)
	}

	return data, nil
}

// MustEncode is Encode for payloads built from constants and ids, which always fit.
func MustEncode(prefix Prefix, fields ...string) string {
	data, err := Encode(prefix, fields...)
	if err != nil {
		panic(err)
	}
	return data
}

func ID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (d Data) Field(i int) string {
	if i < 0 || i >= len(d.Fields) {
		return ""
	}
	return d.Fields[i]
}

func (d Data) Int64(i int) (int64, error) {
	value, err := strconv.ParseInt(d.Field(i), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %d of %s: %w", i, d.Prefix, ErrBadField)
	}
	return value, nil
}

func (d Data) Int(i int) (int, error) {
	value, err := d.Int64(i)
	return int(value), err
}

func (d Data) String() string {
	return strings.Join(append([]string{string(d.Prefix)}, d.Fields...), separator)
}

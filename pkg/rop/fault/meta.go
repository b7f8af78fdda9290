package fault

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type valueKind uint8

const (
	valueInt valueKind = iota
	valueFloat
	valueBool
	valueString
	valueTime
	valueDuration
	valueGUID
	valueEnum
)

// Value is the restricted union allowed in fault metadata. Construct one
// with Int, Float, Bool, String, Time, Duration, GUID or Enum; anything
// richer belongs in the message or the cause chain, not in metadata.
type Value struct {
	kind valueKind
	num  int64
	fpn  float64
	flag bool
	str  string
	ts   time.Time
	id   uuid.UUID
}

func Int(v int64) Value      { return Value{kind: valueInt, num: v} }
func Float(v float64) Value  { return Value{kind: valueFloat, fpn: v} }
func Bool(v bool) Value      { return Value{kind: valueBool, flag: v} }
func String(v string) Value  { return Value{kind: valueString, str: v} }
func Time(v time.Time) Value { return Value{kind: valueTime, ts: v} }

func Duration(v time.Duration) Value { return Value{kind: valueDuration, num: int64(v)} }

func GUID(v uuid.UUID) Value { return Value{kind: valueGUID, id: v} }

// Enum stores the string form of any enumeration that knows how to print
// itself, Kind included.
func Enum(v fmt.Stringer) Value { return Value{kind: valueEnum, str: v.String()} }

// Int returns the integer payload, reporting whether the value holds one.
func (v Value) Int() (int64, bool) { return v.num, v.kind == valueInt }

// Float returns the float payload, reporting whether the value holds one.
func (v Value) Float() (float64, bool) { return v.fpn, v.kind == valueFloat }

// Bool returns the bool payload, reporting whether the value holds one.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == valueBool }

// Text returns the string payload for string and enum values.
func (v Value) Text() (string, bool) { return v.str, v.kind == valueString || v.kind == valueEnum }

// Time returns the timestamp payload, reporting whether the value holds one.
func (v Value) Time() (time.Time, bool) { return v.ts, v.kind == valueTime }

// Duration returns the duration payload, reporting whether the value holds one.
func (v Value) Duration() (time.Duration, bool) {
	return time.Duration(v.num), v.kind == valueDuration
}

// GUID returns the uuid payload, reporting whether the value holds one.
func (v Value) GUID() (uuid.UUID, bool) { return v.id, v.kind == valueGUID }

// String renders the payload for display.
func (v Value) String() string {
	switch v.kind {
	case valueInt:
		return strconv.FormatInt(v.num, 10)
	case valueFloat:
		return strconv.FormatFloat(v.fpn, 'g', -1, 64)
	case valueBool:
		return strconv.FormatBool(v.flag)
	case valueTime:
		return v.ts.Format(time.RFC3339Nano)
	case valueDuration:
		return time.Duration(v.num).String()
	case valueGUID:
		return v.id.String()
	default:
		return v.str
	}
}

// Field is one ordered metadata entry.
type Field struct {
	Key   string
	Value Value
}

type fields []Field

// cloneAppend copies fs and appends extra, keeping the original intact.
func cloneAppend(fs fields, extra ...Field) fields {
	out := make(fields, len(fs), len(fs)+len(extra))
	copy(out, fs)
	return append(out, extra...)
}

// lookup returns the last value stored under key, preserving
// overwrite-by-append semantics for duplicated keys.
func (fs fields) lookup(key string) (Value, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Key == key {
			return fs[i].Value, true
		}
	}
	return Value{}, false
}

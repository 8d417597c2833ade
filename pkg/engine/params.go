package engine

// Parameter names understood by Session implementations for cameras,
// projection nodes and clipping planes.
const (
	ParamFStop            = "fStop"
	ParamFocalLength      = "focalLength"
	ParamFocalDistance    = "focalDistance"
	ParamFOV              = "fov"
	ParamNearClip         = "nearClip"
	ParamFarClip          = "farClip"
	ParamShutterOpenTime  = "shutterOpenTime"
	ParamShutterCloseTime = "shutterCloseTime"
	ParamShutterOpening   = "shutterOpening"
	ParamScreenWindow     = "screenWindow"
	// ParamCropWindow bounds the rendered region as image fractions
	// {xmin, xmax, ymin, ymax} in [0, 1]. The backend converts a fraction f
	// to a pixel edge as ceil(f * size), so producers bias edge values
	// slightly below the pixel boundary they mean.
	ParamCropWindow  = "cropWindow"
	ParamPlaneNormal = "planeNormal"
	ParamPlaneOrigin = "planeOrigin"
)

// ParamType identifies the payload type of a Param.
type ParamType uint8

const (
	FloatParam ParamType = iota
	FloatArrayParam
	IntParam
	StringParam
	NormalParam
	PointParam
)

// Normal3 is a float32 direction parameter.
type Normal3 struct {
	X, Y, Z float32
}

// Point3 is a float32 position parameter.
type Point3 struct {
	X, Y, Z float32
}

// Param is one typed entry of a ParamList.
type Param struct {
	Name  string
	Type  ParamType
	Value any
}

// ParamList is an ordered collection of named, typed parameters, the opaque
// key/value payload of every Session call. Setting an existing name
// replaces its value in place; order is otherwise insertion order. The zero
// value is an empty list ready to use. Copying a ParamList shares storage;
// use Clone for an independent copy.
type ParamList struct {
	params []Param
}

// Len returns the number of parameters.
func (l *ParamList) Len() int {
	return len(l.params)
}

// Names returns the parameter names in order.
func (l *ParamList) Names() []string {
	names := make([]string, len(l.params))
	for i, p := range l.params {
		names[i] = p.Name
	}
	return names
}

// Clone returns a deep copy of the list.
func (l *ParamList) Clone() ParamList {
	params := make([]Param, len(l.params))
	copy(params, l.params)
	for i, p := range params {
		if arr, ok := p.Value.([]float32); ok {
			params[i].Value = append([]float32(nil), arr...)
		}
	}
	return ParamList{params: params}
}

func (l *ParamList) set(name string, typ ParamType, value any) {
	for i := range l.params {
		if l.params[i].Name == name {
			l.params[i].Type = typ
			l.params[i].Value = value
			return
		}
	}
	l.params = append(l.params, Param{Name: name, Type: typ, Value: value})
}

func (l *ParamList) lookup(name string, typ ParamType) (any, bool) {
	for i := range l.params {
		if l.params[i].Name == name {
			if l.params[i].Type != typ {
				return nil, false
			}
			return l.params[i].Value, true
		}
	}
	return nil, false
}

// SetFloat stores a float parameter.
func (l *ParamList) SetFloat(name string, v float32) {
	l.set(name, FloatParam, v)
}

// SetFloatArray stores a float array parameter. The slice is stored as
// given, not copied.
func (l *ParamList) SetFloatArray(name string, v []float32) {
	l.set(name, FloatArrayParam, v)
}

// SetInt stores an integer parameter.
func (l *ParamList) SetInt(name string, v int32) {
	l.set(name, IntParam, v)
}

// SetString stores a string parameter.
func (l *ParamList) SetString(name string, v string) {
	l.set(name, StringParam, v)
}

// SetNormal stores a direction parameter.
func (l *ParamList) SetNormal(name string, v Normal3) {
	l.set(name, NormalParam, v)
}

// SetPoint stores a position parameter.
func (l *ParamList) SetPoint(name string, v Point3) {
	l.set(name, PointParam, v)
}

// Float returns the named float parameter.
func (l *ParamList) Float(name string) (float32, bool) {
	v, ok := l.lookup(name, FloatParam)
	if !ok {
		return 0, false
	}
	return v.(float32), true
}

// FloatArray returns the named float array parameter.
func (l *ParamList) FloatArray(name string) ([]float32, bool) {
	v, ok := l.lookup(name, FloatArrayParam)
	if !ok {
		return nil, false
	}
	return v.([]float32), true
}

// Int returns the named integer parameter.
func (l *ParamList) Int(name string) (int32, bool) {
	v, ok := l.lookup(name, IntParam)
	if !ok {
		return 0, false
	}
	return v.(int32), true
}

// String returns the named string parameter.
func (l *ParamList) String(name string) (string, bool) {
	v, ok := l.lookup(name, StringParam)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Normal returns the named direction parameter.
func (l *ParamList) Normal(name string) (Normal3, bool) {
	v, ok := l.lookup(name, NormalParam)
	if !ok {
		return Normal3{}, false
	}
	return v.(Normal3), true
}

// Point returns the named position parameter.
func (l *ParamList) Point(name string) (Point3, bool) {
	v, ok := l.lookup(name, PointParam)
	if !ok {
		return Point3{}, false
	}
	return v.(Point3), true
}

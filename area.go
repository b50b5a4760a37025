package cropvariantsbuilder

// Required keys of a crop rectangle.
const (
	AreaKeyX      = "x"
	AreaKeyY      = "y"
	AreaKeyWidth  = "width"
	AreaKeyHeight = "height"
)

var areaKeys = []string{AreaKeyX, AreaKeyY, AreaKeyWidth, AreaKeyHeight}

// Area is a crop rectangle expressed as an opaque mapping. Values are
// carried through untouched; they may be relative fractions, percentages or
// pixel counts depending on what the surrounding system feeds in. An Area is
// complete when all four keys are present.
type Area map[string]any

func (a Area) IsEmpty() bool {
	return len(a) == 0
}

// Complete reports whether all four rectangle keys are present.
func (a Area) Complete() bool {
	return len(a.MissingKeys()) == 0
}

// MissingKeys returns the absent rectangle keys in x, y, width, height order.
func (a Area) MissingKeys() []string {
	var missing []string
	for _, key := range areaKeys {
		if _, ok := a[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func (a Area) clone() Area {
	if a == nil {
		return nil
	}
	c := make(Area, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// FullArea returns the rectangle covering the whole image. It is the default
// crop area of every new builder.
func FullArea() Area {
	return Area{
		AreaKeyX:      0.0,
		AreaKeyY:      0.0,
		AreaKeyWidth:  1.0,
		AreaKeyHeight: 1.0,
	}
}

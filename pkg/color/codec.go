package color

// ToTuple parses value in its own mode and converts the result into space.
func ToTuple(value string, space Space) (Tuple, error) {
	_, tuple, err := Parse(value)
	if err != nil {
		return nil, err
	}
	return ConvertTuple(tuple, space), nil
}

// FromTuple encodes t in mode, converting spaces as needed. Alpha is
// appended only when withAlpha is set.
func FromTuple(t Tuple, mode Mode, withAlpha bool) string {
	switch mode {
	case ModeHex:
		if withAlpha {
			return ToHexaString(ToRGBA(t))
		}
		return ToHexString(ToRGBA(t))
	case ModeHSL:
		if withAlpha {
			return ToHSLAString(ToHSLA(t))
		}
		return ToHSLString(ToHSLA(t))
	case ModeHSV:
		if withAlpha {
			return ToHSVAString(ToHSVA(t))
		}
		return ToHSVString(ToHSVA(t))
	default:
		if withAlpha {
			return ToRGBAString(ToRGBA(t))
		}
		return ToRGBString(ToRGBA(t))
	}
}

// Convert re-encodes value in mode.
func Convert(value string, mode Mode, withAlpha bool) (string, error) {
	_, tuple, err := Parse(value)
	if err != nil {
		return "", err
	}
	return FromTuple(tuple, mode, withAlpha), nil
}

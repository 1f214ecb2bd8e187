package planner

// Argument readers: every raw argument passes through one of these before it
// reaches a tool body, so downstream logic only sees canonical shapes.

func argString(args map[string]interface{}, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", newParameterError(name, "required")
	}
	s, ok := v.(string)
	if !ok {
		return "", newParameterError(name, "expected a string")
	}
	if s == "" {
		return "", newParameterError(name, "required")
	}
	return s, nil
}

func optString(args map[string]interface{}, name string) (string, bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, newParameterError(name, "expected a string")
	}
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

func optNumber(args map[string]interface{}, name string) (float64, bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, err := coerceNumber(name, v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func reqNumber(args map[string]interface{}, name string) (float64, error) {
	n, ok, err := optNumber(args, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, newParameterError(name, "required")
	}
	return n, nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oliverbestmann/se2/gm"
)

var errUsage = errors.New("invalid arguments")

func run(args []string) (gm.Transform, error) {
	if len(args) == 0 {
		return gm.Transform{}, fmt.Errorf("no operation given: %w", errUsage)
	}

	op, args := args[0], args[1:]

	switch op {
	case "compose":
		if len(args) < 2 {
			return gm.Transform{}, fmt.Errorf("compose needs at least two transforms: %w", errUsage)
		}

		transforms, err := parseTransforms(args)
		if err != nil {
			return gm.Transform{}, err
		}

		result := gm.IdentityTransform()
		for _, tr := range transforms {
			result = result.Mul(tr)
		}

		return result, nil

	case "inverse":
		if len(args) != 1 {
			return gm.Transform{}, fmt.Errorf("inverse needs exactly one transform: %w", errUsage)
		}

		tr, err := parseTransform(args[0])
		if err != nil {
			return gm.Transform{}, err
		}

		return tr.Inverse(), nil

	case "relative":
		if len(args) != 2 {
			return gm.Transform{}, fmt.Errorf("relative needs exactly two transforms: %w", errUsage)
		}

		transforms, err := parseTransforms(args)
		if err != nil {
			return gm.Transform{}, err
		}

		return transforms[0].InverseMul(transforms[1]), nil

	case "lerp":
		if len(args) != 3 {
			return gm.Transform{}, fmt.Errorf("lerp needs two transforms and a ratio: %w", errUsage)
		}

		transforms, err := parseTransforms(args[:2])
		if err != nil {
			return gm.Transform{}, err
		}

		ratio, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return gm.Transform{}, fmt.Errorf("parse ratio %q: %w", args[2], err)
		}

		return transforms[0].Lerp(transforms[1], ratio), nil

	default:
		return gm.Transform{}, fmt.Errorf("unknown operation %q: %w", op, errUsage)
	}
}

func parseTransforms(args []string) ([]gm.Transform, error) {
	var transforms []gm.Transform

	for _, arg := range args {
		tr, err := parseTransform(arg)
		if err != nil {
			return nil, err
		}

		transforms = append(transforms, tr)
	}

	return transforms, nil
}

// parseTransform parses a transform in the form x,y,angle
func parseTransform(value string) (gm.Transform, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 3 {
		return gm.Transform{}, fmt.Errorf("transform %q must be x,y,angle: %w", value, errUsage)
	}

	var values [3]float64
	for idx, field := range fields {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return gm.Transform{}, fmt.Errorf("parse transform %q: %w", value, err)
		}

		values[idx] = parsed
	}

	return gm.TransformFromXYAngle(values[0], values[1], gm.Rad(values[2])), nil
}

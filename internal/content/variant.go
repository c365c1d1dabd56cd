package content

// SelectVariant picks the variant written for grade. When no variant targets
// that grade exactly, the first variant in definition order is returned.
func SelectVariant(l Lesson, grade int) (Variant, error) {
	if len(l.Variants) == 0 {
		return Variant{}, ErrNoVariants
	}
	for _, v := range l.Variants {
		if v.TargetGrade == grade {
			return v, nil
		}
	}
	return l.Variants[0], nil
}

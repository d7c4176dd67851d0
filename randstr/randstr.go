package randstr

// String returns a random string of DefaultLength symbols from DefaultCharset.
func String() (string, error) {
	return StringLen(DefaultLength)
}

// StringLen returns a random string of the given length from DefaultCharset.
func StringLen(length int) (string, error) {
	res, err := New(NewConfigLen(length)).Generate()
	if err != nil {
		return "", err
	}

	v, _ := res.Single()

	return v, nil
}

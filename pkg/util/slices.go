package util

// InPlaceFilter keeps the elements matching p, reusing the backing array of s
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := 0
	for _, element := range *s {
		if p(element) {
			(*s)[kept] = element
			kept++
		}
	}
	*s = (*s)[:kept]
}

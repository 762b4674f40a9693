package fu

/*
Contains returns true if the list contains the string s
*/
func Contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

/*
Filter returns the strings of the list accepted by the function f
*/
func Filter(list []string, f func(string) bool) []string {
	r := []string{}
	for _, x := range list {
		if f(x) {
			r = append(r, x)
		}
	}
	return r
}

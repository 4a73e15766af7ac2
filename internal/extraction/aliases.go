package extraction

// courseInfoAliases maps alternate field names the model sometimes emits to
// their canonical schema keys. Applied once, before validation; an alias
// never overwrites a canonical key that is already present.
var courseInfoAliases = map[string]string{
	"course_name":     "name",
	"course_title":    "name",
	"instructor_name": "instructor",
	"course_code":     "code",
}

// normalizeAliases rewrites known alias keys in the raw response to the
// canonical schema in place.
func normalizeAliases(data map[string]any) {
	courseInfo, ok := data["course_info"].(map[string]any)
	if !ok {
		return
	}
	for alias, canonical := range courseInfoAliases {
		val, exists := courseInfo[alias]
		if !exists {
			continue
		}
		if _, taken := courseInfo[canonical]; !taken {
			courseInfo[canonical] = val
		}
		delete(courseInfo, alias)
	}
}

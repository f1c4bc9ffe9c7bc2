package site

import "strings"

// TransformBeforeValidation normalizes the base URL so downstream joins
// never produce double slashes.
func (s *SiteConfig) TransformBeforeValidation() error {
	s.URL = strings.TrimRight(strings.TrimSpace(s.URL), "/")
	return nil
}

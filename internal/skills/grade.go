package skills

// OtherGrade returns the opposite practice track.
func OtherGrade(g string) string {
	if g == GradeJunior {
		return GradeMiddle
	}
	return GradeJunior
}

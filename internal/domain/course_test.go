package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourse() Course {
	return Course{
		Name:          "Statistics",
		Department:    DeptMath,
		Type:          TypeElective,
		Focus:         FocusMedium,
		Tag:           "Social Science Data",
		HomeworkHours: 3,
	}
}

func TestCourseValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Course)
		wantErr string
	}{
		{"valid", func(*Course) {}, ""},
		{"blank name", func(c *Course) { c.Name = "  " }, "name is required"},
		{"bad department", func(c *Course) { c.Department = "Art" }, "unknown department"},
		{"bad type", func(c *Course) { c.Type = "UAS (Adv)" }, "unknown type"},
		{"bad focus", func(c *Course) { c.Focus = "Extreme" }, "unknown DEIB focus"},
		{"zero homework", func(c *Course) { c.HomeworkHours = 0 }, "must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCourse()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCourseHasTag(t *testing.T) {
	c := validCourse()
	assert.True(t, c.HasTag())
	c.Tag = TagNone
	assert.False(t, c.HasTag())
	c.Tag = ""
	assert.False(t, c.HasTag())
}

func TestParseCourseType(t *testing.T) {
	cases := map[string]CourseType{
		"Required":  TypeRequired,
		"elective":  TypeElective,
		"UAS (Adv)": TypeAdvanced,
		"adv":       TypeAdvanced,
		" Advanced": TypeAdvanced,
	}
	for in, want := range cases {
		got, err := ParseCourseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCourseType("seminar")
	assert.Error(t, err)
}

func TestParseDEIBFocus(t *testing.T) {
	got, err := ParseDEIBFocus("MED")
	require.NoError(t, err)
	assert.Equal(t, FocusMedium, got)

	got, err = ParseDEIBFocus("high")
	require.NoError(t, err)
	assert.Equal(t, FocusHigh, got)

	_, err = ParseDEIBFocus("none")
	assert.Error(t, err)
}

func TestParseDepartment(t *testing.T) {
	got, err := ParseDepartment("science")
	require.NoError(t, err)
	assert.Equal(t, DeptScience, got)

	_, err = ParseDepartment("Art")
	assert.Error(t, err)
}

func TestFocusRank(t *testing.T) {
	assert.Less(t, FocusLow.Rank(), FocusMedium.Rank())
	assert.Less(t, FocusMedium.Rank(), FocusHigh.Rank())
	assert.Equal(t, -1, DEIBFocus("?").Rank())
}

func TestIsSTEM(t *testing.T) {
	assert.True(t, DeptMath.IsSTEM())
	assert.True(t, DeptScience.IsSTEM())
	assert.False(t, DeptHistory.IsSTEM())
}

func TestCohortBalanced(t *testing.T) {
	c := Cohort{TotalStudents: 15, Gender: GenderCounts{Male: 8, Female: 5, NonBinary: 2}}
	assert.True(t, c.Balanced())
	c.Gender.Female = 6
	assert.False(t, c.Balanced())
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 0.67, RoundTo2(2.0/3.0))
	assert.Equal(t, 0.5, RoundTo2(0.5))
}

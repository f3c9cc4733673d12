// Package support lists the counselors and peer mentors students can reach,
// books sessions with them and runs the scripted mentor chat.
package support

import (
	"strings"

	"github.com/akyairhashvil/umeed/internal/models"
)

// CounselorSpecialties are the filter choices offered for counselors.
var CounselorSpecialties = []string{
	"Clinical Psychology",
	"Counseling Psychology",
	"Anxiety Disorders",
	"Depression Treatment",
	"Stress Management",
	"Academic Counseling",
	"Career Guidance",
	"Trauma Therapy",
}

// MentorSpecialties are the filter choices offered for mentors.
var MentorSpecialties = []string{
	"Academic Stress",
	"Anxiety Management",
	"Depression Support",
	"Career Guidance",
	"Relationship Issues",
	"Social Anxiety",
	"Time Management",
	"Study Skills",
}

var counselors = []models.Counselor{
	{
		ID:             "c1",
		Name:           "Dr. Meera Gupta",
		Title:          "Clinical Psychologist",
		Qualifications: []string{"Ph.D. Psychology", "M.Phil Clinical Psychology"},
		Specialties:    []string{"Anxiety Disorders", "Depression Treatment", "Stress Management"},
		Experience:     8,
		Rating:         4.9,
		TotalSessions:  1250,
		Location:       "Jammu",
		Languages:      []string{"Hindi", "English", "Dogri"},
		Bio:            "Dr. Gupta specializes in cognitive behavioral therapy and has extensive experience working with college students. She creates a safe, non-judgmental environment for healing.",
		Slots:          []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
		Fee:            800,
	},
	{
		ID:             "c2",
		Name:           "Dr. Rajesh Sharma",
		Title:          "Counseling Psychologist",
		Qualifications: []string{"M.A. Psychology", "Diploma in Counseling"},
		Specialties:    []string{"Academic Counseling", "Career Guidance", "Relationship Issues"},
		Experience:     12,
		Rating:         4.8,
		TotalSessions:  2100,
		Location:       "Srinagar",
		Languages:      []string{"Hindi", "English", "Kashmiri", "Urdu"},
		Bio:            "With over a decade of experience, Dr. Sharma helps students navigate academic pressures and make informed career decisions while maintaining mental wellness.",
		Slots:          []string{"10:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"},
		Fee:            1000,
	},
	{
		ID:             "c3",
		Name:           "Dr. Priya Devi",
		Title:          "Clinical Psychologist",
		Qualifications: []string{"Ph.D. Clinical Psychology", "Post-Doc Trauma Therapy"},
		Specialties:    []string{"Trauma Therapy", "PTSD Treatment", "Anxiety Disorders"},
		Experience:     6,
		Rating:         4.9,
		TotalSessions:  890,
		Location:       "Jammu",
		Languages:      []string{"Hindi", "English", "Punjabi"},
		Bio:            "Dr. Devi specializes in trauma-informed care and uses evidence-based approaches to help students overcome difficult experiences and build resilience.",
		Slots:          []string{"9:30 AM", "12:00 PM", "2:30 PM", "4:30 PM"},
		Fee:            900,
	},
	{
		ID:             "c4",
		Name:           "Dr. Amit Singh",
		Title:          "Counseling Psychologist",
		Qualifications: []string{"M.Phil Psychology", "Certificate in CBT"},
		Specialties:    []string{"Depression Treatment", "Stress Management", "Academic Counseling"},
		Experience:     5,
		Rating:         4.7,
		TotalSessions:  650,
		Location:       "Udhampur",
		Languages:      []string{"Hindi", "English", "Dogri"},
		Bio:            "Dr. Singh focuses on helping students develop coping strategies and build emotional resilience through personalized therapeutic approaches.",
		Slots:          []string{"11:00 AM", "1:30 PM", "3:30 PM", "5:30 PM"},
		Fee:            700,
	},
	{
		ID:             "c5",
		Name:           "Dr. Sunita Kumari",
		Title:          "Clinical Psychologist",
		Qualifications: []string{"Ph.D. Psychology", "Specialization in Adolescent Psychology"},
		Specialties:    []string{"Anxiety Disorders", "Social Anxiety", "Self-Esteem Issues"},
		Experience:     10,
		Rating:         4.8,
		TotalSessions:  1500,
		Location:       "Srinagar",
		Languages:      []string{"Hindi", "English", "Kashmiri"},
		Bio:            "Dr. Kumari has a special interest in working with young adults and uses a holistic approach to mental health that considers cultural and social factors.",
		Slots:          []string{"9:00 AM", "12:30 PM", "3:00 PM", "5:00 PM"},
		Fee:            850,
	},
	{
		ID:             "c6",
		Name:           "Dr. Vikram Pandita",
		Title:          "Psychiatrist & Counselor",
		Qualifications: []string{"MBBS", "MD Psychiatry", "Diploma in Psychological Medicine"},
		Specialties:    []string{"Clinical Psychology", "Medication Management", "Severe Mental Health"},
		Experience:     15,
		Rating:         4.9,
		TotalSessions:  3200,
		Location:       "Jammu",
		Languages:      []string{"Hindi", "English", "Kashmiri", "Dogri"},
		Bio:            "Dr. Pandita combines medical and psychological approaches to provide comprehensive mental health care, especially for complex cases requiring integrated treatment.",
		Slots:          []string{"10:30 AM", "2:00 PM", "4:00 PM", "6:00 PM"},
		Fee:            1200,
	},
}

var mentors = []models.Mentor{
	{
		ID:            "m1",
		Name:          "Priya Sharma",
		Year:          "4th Year",
		College:       "University of Jammu",
		Specialties:   []string{"Academic Stress", "Time Management", "Study Skills"},
		Rating:        4.8,
		TotalSessions: 45,
		Availability:  []string{"Morning (6AM-12PM)", "Evening (6PM-10PM)"},
		Bio:           "I've helped many students overcome academic challenges and develop effective study strategies. I understand the pressure of college life and I'm here to support you.",
		Online:        true,
	},
	{
		ID:            "m2",
		Name:          "Arjun Singh",
		Year:          "3rd Year",
		College:       "NIT Srinagar",
		Specialties:   []string{"Anxiety Management", "Social Anxiety", "Career Guidance"},
		Rating:        4.9,
		TotalSessions: 62,
		Availability:  []string{"Afternoon (12PM-6PM)", "Weekend Available"},
		Bio:           "Having dealt with anxiety myself, I can relate to what you're going through. Let's work together to build confidence and manage stress effectively.",
	},
	{
		ID:            "m3",
		Name:          "Sneha Devi",
		Year:          "4th Year",
		College:       "SMVD University",
		Specialties:   []string{"Depression Support", "Relationship Issues", "Academic Stress"},
		Rating:        4.7,
		TotalSessions: 38,
		Availability:  []string{"Evening (6PM-10PM)", "Weekend Available"},
		Bio:           "I believe in creating a safe space where you can share your thoughts freely. Together, we can work through challenges and find positive solutions.",
		Online:        true,
	},
	{
		ID:            "m4",
		Name:          "Rohit Kumar",
		Year:          "5th Year",
		College:       "IIIM Jammu",
		Specialties:   []string{"Career Guidance", "Time Management", "Study Skills"},
		Rating:        4.6,
		TotalSessions: 29,
		Availability:  []string{"Morning (6AM-12PM)", "Afternoon (12PM-6PM)"},
		Bio:           "As a senior student, I've navigated the complexities of college life and career planning. I'm here to share insights and help you make informed decisions.",
		Online:        true,
	},
	{
		ID:            "m5",
		Name:          "Kavya Thakur",
		Year:          "3rd Year",
		College:       "Central University of Kashmir",
		Specialties:   []string{"Social Anxiety", "Relationship Issues", "Anxiety Management"},
		Rating:        4.8,
		TotalSessions: 51,
		Availability:  []string{"Afternoon (12PM-6PM)", "Evening (6PM-10PM)"},
		Bio:           "I understand how overwhelming social situations can be. Let's work together to build your confidence and develop healthy relationships.",
	},
	{
		ID:            "m6",
		Name:          "Vikash Pandita",
		Year:          "4th Year",
		College:       "University of Kashmir",
		Specialties:   []string{"Academic Stress", "Depression Support", "Career Guidance"},
		Rating:        4.9,
		TotalSessions: 73,
		Availability:  []string{"Morning (6AM-12PM)", "Weekend Available"},
		Bio:           "Having overcome my own academic struggles, I'm passionate about helping others succeed. Every challenge is an opportunity for growth.",
		Online:        true,
	},
}

// Counselors returns a copy of the counselor directory.
func Counselors() []models.Counselor {
	return append([]models.Counselor(nil), counselors...)
}

// Mentors returns a copy of the mentor directory.
func Mentors() []models.Mentor {
	return append([]models.Mentor(nil), mentors...)
}

// Counselor looks a counselor up by id.
func Counselor(id string) (models.Counselor, bool) {
	for _, c := range counselors {
		if c.ID == id {
			return c, true
		}
	}
	return models.Counselor{}, false
}

// Mentor looks a mentor up by id.
func Mentor(id string) (models.Mentor, bool) {
	for _, m := range mentors {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mentor{}, false
}

// Filter narrows a directory listing. Empty fields match everything.
// Query is matched case-insensitively against names, places and
// specialties. Specialty must equal one specialty, or name the discipline
// of a counselor's title.
type Filter struct {
	Query     string
	Specialty string
}

// FilterCounselors returns the counselors matching f, in directory order.
func FilterCounselors(list []models.Counselor, f Filter) []models.Counselor {
	var out []models.Counselor
	for _, c := range list {
		fields := append([]string{c.Name, c.Title, c.Location}, c.Specialties...)
		if !matchesQuery(f.Query, fields) {
			continue
		}
		if f.Specialty != "" && !hasFold(c.Specialties, f.Specialty) && !strings.EqualFold(c.Title, practitioner(f.Specialty)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterMentors returns the mentors matching f, in directory order.
func FilterMentors(list []models.Mentor, f Filter) []models.Mentor {
	var out []models.Mentor
	for _, m := range list {
		fields := append([]string{m.Name, m.College, m.Year}, m.Specialties...)
		if !matchesQuery(f.Query, fields) {
			continue
		}
		if f.Specialty != "" && !hasFold(m.Specialties, f.Specialty) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// practitioner turns a discipline filter such as "Clinical Psychology" into
// the job title "Clinical Psychologist".
func practitioner(s string) string {
	if strings.HasSuffix(s, "Psychology") {
		return strings.TrimSuffix(s, "y") + "ist"
	}
	return s
}

func matchesQuery(q string, fields []string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func hasFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

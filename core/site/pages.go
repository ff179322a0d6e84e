package site

type (
	Feature struct {
		Title string
		Desc  string
	}

	Stat struct {
		Num   string
		Label string
	}

	NewsItem struct {
		Date  string
		Title string
		Desc  string
	}

	Person struct {
		Name string
		Role string
		Desc string
	}

	Subject struct {
		Name   string
		Grades string
	}

	Level struct {
		Name string
		Desc string
	}

	Activity struct {
		Name  string
		Items []string
	}

	HomePage struct {
		HeroImage string
		Intro     string
		Features  []Feature
		Stats     []Stat
		News      []NewsItem
	}

	AboutPage struct {
		History          []string
		Vision           string
		Mission          string
		PrincipalMessage string
		Principal        Person
		Staff            []Person
	}

	AcademicsPage struct {
		Subjects   []Subject
		Levels     []Level
		Activities []Activity
	}
)

func NewHomePage(school School) HomePage {
	return HomePage{
		HeroImage: "https://res.cloudinary.com/dl8hswxt2/image/upload/v1771230706/hero-school_orbhm6.jpg",
		Intro: "At " + school.Name + ", we cultivate curious minds and compassionate hearts, " +
			"preparing students for a lifetime of learning and leadership.",
		Features: []Feature{
			{Title: "Academic Excellence", Desc: "Rigorous curriculum with personalized learning paths for every student."},
			{Title: "Expert Faculty", Desc: "Dedicated teachers with advanced degrees and years of experience."},
			{Title: "Sports & Activities", Desc: "State-of-the-art facilities for athletics, arts, and extracurriculars."},
			{Title: "College Prep", Desc: "95% of our graduates are accepted into their first-choice universities."},
		},
		Stats: []Stat{
			{Num: "1,200+", Label: "Students"},
			{Num: "98%", Label: "Pass Rate"},
			{Num: "50+", Label: "Faculty"},
			{Num: "40+", Label: "Years"},
		},
		News: []NewsItem{
			{Date: "Feb 10, 2026", Title: "Spring Admissions Now Open", Desc: "Applications for the 2026-27 academic year are now being accepted."},
			{Date: "Jan 28, 2026", Title: "Science Fair Winners Announced", Desc: "Congratulations to our students who swept the regional science fair."},
			{Date: "Jan 15, 2026", Title: "New STEM Lab Opening", Desc: "Our brand new robotics and engineering lab opens next month."},
		},
	}
}

func NewAboutPage(school School) AboutPage {
	principal := Person{Name: "Dr. Sarah Mitchell", Role: "Principal", Desc: "Ed.D. in Educational Leadership, 25 years in education."}
	return AboutPage{
		History: []string{
			school.Name + " was founded by a group of visionary educators who believed in creating a school that " +
				"nurtures the whole child. Starting with just 50 students and 5 teachers in a small community building, " +
				"the school has grown into a premier institution serving over 1,200 students.",
			"Over four decades, we have built a legacy of academic excellence, graduating students who have gone on to " +
				"attend top universities worldwide and become leaders in their fields. Our campus has expanded to include " +
				"modern science labs, a performing arts center, athletic facilities, and a state-of-the-art library.",
			"Today, " + school.Name + " stands as a testament to the power of dedicated education, continuing to evolve " +
				"and innovate while staying true to its founding principles of excellence, integrity, and compassion.",
		},
		Vision: "To be a globally recognized institution that develops compassionate, innovative, and responsible " +
			"citizens who make a positive impact on society. We envision a world where every child has the opportunity " +
			"to discover their potential and pursue their passions.",
		Mission: "To provide an inclusive, challenging, and supportive educational environment that fosters intellectual " +
			"curiosity, creative thinking, and moral character. We are committed to developing the academic, social, and " +
			"emotional potential of every student.",
		PrincipalMessage: "At " + school.Name + ", we believe that education is not just about acquiring knowledge, it's " +
			"about igniting a lifelong passion for learning. Our dedicated team works tirelessly to create an environment " +
			"where every student feels valued, challenged, and inspired to reach their highest potential. Together, we are " +
			"building a community of learners who will shape a brighter future.",
		Principal: principal,
		Staff: []Person{
			principal,
			{Name: "Mr. James Carter", Role: "Vice Principal", Desc: "M.Ed. in Curriculum Development, passionate about student success."},
			{Name: "Ms. Priya Sharma", Role: "Head of Sciences", Desc: "Ph.D. in Physics, award-winning science educator."},
			{Name: "Mr. David Okonkwo", Role: "Head of Humanities", Desc: "M.A. in Literature, published author and mentor."},
			{Name: "Ms. Elena Rodriguez", Role: "Head of Arts", Desc: "MFA in Fine Arts, exhibited in galleries worldwide."},
			{Name: "Mr. Robert Kim", Role: "Athletic Director", Desc: "Former Olympic coach with 20 years of sports leadership."},
		},
	}
}

func NewAcademicsPage() AcademicsPage {
	return AcademicsPage{
		Subjects: []Subject{
			{Name: "Mathematics", Grades: "K-12"},
			{Name: "Sciences", Grades: "K-12"},
			{Name: "English & Literature", Grades: "K-12"},
			{Name: "Social Studies", Grades: "K-12"},
			{Name: "Computer Science", Grades: "6-12"},
			{Name: "Visual Arts", Grades: "K-12"},
			{Name: "Music & Performing Arts", Grades: "K-12"},
			{Name: "Foreign Languages", Grades: "6-12"},
		},
		Levels: []Level{
			{Name: "Elementary (K-5)", Desc: "Building strong foundations through inquiry-based learning, phonics, basic mathematics, and exploratory science."},
			{Name: "Middle School (6-8)", Desc: "Developing critical thinking with advanced subjects, electives, and project-based learning opportunities."},
			{Name: "High School (9-12)", Desc: "College-preparatory curriculum with AP courses, honors programs, and career exploration pathways."},
		},
		Activities: []Activity{
			{Name: "Athletics", Items: []string{"Basketball", "Soccer", "Track & Field", "Swimming", "Tennis"}},
			{Name: "Creative Arts", Items: []string{"Drama Club", "Art Studio", "Photography", "Creative Writing", "Film Making"}},
			{Name: "STEM Clubs", Items: []string{"Robotics", "Science Olympiad", "Math League", "Coding Club", "Engineering Design"}},
			{Name: "Community", Items: []string{"Student Council", "Debate Team", "Model UN", "Volunteer Corps", "Environmental Club"}},
		},
	}
}

package catalog

import "github.com/jonathan/skillgap-analyzer/internal/types"

func seed(skill, title, url string, platform types.Platform, weeks int, level types.DifficultyLevel, desc string, rating float64, price string) types.LearningResource {
	return types.LearningResource{
		SkillName:       skill,
		ResourceTitle:   title,
		ResourceURL:     url,
		Platform:        platform,
		DurationWeeks:   weeks,
		DifficultyLevel: level,
		Description:     desc,
		Rating:          rating,
		Price:           price,
	}
}

// seedResources is the built-in resource set, used when no database catalog
// is configured and as the initial content of a fresh database.
var seedResources = []types.LearningResource{
	seed("Python", "Complete Python Bootcamp", "https://www.udemy.com/course/complete-python-bootcamp/",
		types.PlatformUdemy, 4, types.DifficultyBeginner, "Learn Python from scratch", 4.6, "$19.99"),
	seed("Python", "Python for Everybody", "https://www.coursera.org/specializations/python",
		types.PlatformCoursera, 8, types.DifficultyBeginner, "University of Michigan Python course", 4.8, "Free"),
	seed("Python", "Python Tutorial", "https://www.youtube.com/watch?v=_uQrJ0TkZlc",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "6-hour Python tutorial", 4.7, "Free"),

	seed("Java", "Java Programming Masterclass", "https://www.udemy.com/course/java-the-complete-java-developer-course/",
		types.PlatformUdemy, 6, types.DifficultyBeginner, "Complete Java development", 4.6, "$24.99"),
	seed("Java", "Object Oriented Programming in Java", "https://www.coursera.org/learn/object-oriented-java",
		types.PlatformCoursera, 6, types.DifficultyIntermediate, "Duke University Java course", 4.7, "Free"),

	seed("JavaScript", "The Complete JavaScript Course", "https://www.udemy.com/course/the-complete-javascript-course/",
		types.PlatformUdemy, 6, types.DifficultyAllLevels, "Modern JavaScript from beginner to advanced", 4.7, "$19.99"),
	seed("JavaScript", "JavaScript Tutorial", "https://www.youtube.com/watch?v=PkZNo7MFNFg",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "JavaScript full course", 4.8, "Free"),

	seed("React", "React - The Complete Guide", "https://www.udemy.com/course/react-the-complete-guide/",
		types.PlatformUdemy, 5, types.DifficultyIntermediate, "Master React including Hooks", 4.6, "$24.99"),
	seed("React", "React Tutorial", "https://www.youtube.com/watch?v=Ke90Tje7VS0",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "React JS crash course", 4.7, "Free"),

	seed("Docker", "Docker Mastery", "https://www.udemy.com/course/docker-mastery/",
		types.PlatformUdemy, 4, types.DifficultyIntermediate, "Complete Docker course", 4.7, "$19.99"),
	seed("Docker", "Docker Tutorial for Beginners", "https://www.youtube.com/watch?v=fqMOX6JJhGo",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "Docker crash course", 4.8, "Free"),

	seed("Kubernetes", "Kubernetes for Absolute Beginners", "https://www.udemy.com/course/learn-kubernetes/",
		types.PlatformUdemy, 3, types.DifficultyBeginner, "Learn Kubernetes basics", 4.5, "$19.99"),
	seed("Kubernetes", "Kubernetes Tutorial", "https://www.youtube.com/watch?v=X48VuDVv0do",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "Kubernetes crash course", 4.7, "Free"),

	seed("AWS", "AWS Certified Solutions Architect", "https://www.udemy.com/course/aws-certified-solutions-architect-associate/",
		types.PlatformUdemy, 12, types.DifficultyIntermediate, "Complete AWS certification prep", 4.7, "$24.99"),
	seed("AWS", "AWS Tutorial for Beginners", "https://www.youtube.com/watch?v=k1RI5locZE4",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "AWS full course", 4.6, "Free"),

	seed("SQL", "The Complete SQL Bootcamp", "https://www.udemy.com/course/the-complete-sql-bootcamp/",
		types.PlatformUdemy, 3, types.DifficultyBeginner, "Master SQL queries", 4.6, "$19.99"),
	seed("SQL", "SQL Tutorial", "https://www.youtube.com/watch?v=HXV3zeQKqGY",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "SQL full course", 4.7, "Free"),

	seed("MongoDB", "MongoDB - The Complete Developer's Guide", "https://www.udemy.com/course/mongodb-the-complete-developers-guide/",
		types.PlatformUdemy, 4, types.DifficultyIntermediate, "Master MongoDB", 4.6, "$19.99"),
	seed("MongoDB", "MongoDB Crash Course", "https://www.youtube.com/watch?v=-56x56UppqQ",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "MongoDB tutorial", 4.7, "Free"),

	seed("Machine Learning", "Machine Learning A-Z", "https://www.udemy.com/course/machinelearning/",
		types.PlatformUdemy, 8, types.DifficultyIntermediate, "Hands-on Python & R", 4.5, "$24.99"),
	seed("Machine Learning", "Machine Learning by Stanford", "https://www.coursera.org/learn/machine-learning",
		types.PlatformCoursera, 11, types.DifficultyIntermediate, "Andrew Ng's famous course", 4.9, "Free"),

	seed("TensorFlow", "TensorFlow Developer Certificate", "https://www.udemy.com/course/tensorflow-developer-certificate/",
		types.PlatformUdemy, 6, types.DifficultyIntermediate, "Official TensorFlow cert prep", 4.7, "$24.99"),
	seed("TensorFlow", "TensorFlow Tutorial", "https://www.youtube.com/watch?v=tPYj3fFJGjk",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "TensorFlow crash course", 4.6, "Free"),

	seed("Node.js", "The Complete Node.js Developer Course", "https://www.udemy.com/course/the-complete-nodejs-developer-course/",
		types.PlatformUdemy, 5, types.DifficultyIntermediate, "Build real-world apps", 4.6, "$19.99"),
	seed("Node.js", "Node.js Tutorial", "https://www.youtube.com/watch?v=TlB_eWDSMt4",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "Node.js full course", 4.7, "Free"),

	seed("TypeScript", "Understanding TypeScript", "https://www.udemy.com/course/understanding-typescript/",
		types.PlatformUdemy, 4, types.DifficultyIntermediate, "Master TypeScript", 4.7, "$19.99"),
	seed("TypeScript", "TypeScript Tutorial", "https://www.youtube.com/watch?v=BwuLxPH8IDs",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "TypeScript crash course", 4.6, "Free"),

	seed("Git", "Git Complete Guide", "https://www.udemy.com/course/git-complete/",
		types.PlatformUdemy, 2, types.DifficultyBeginner, "Master Git and GitHub", 4.7, "$19.99"),
	seed("Git", "Git Tutorial for Beginners", "https://www.youtube.com/watch?v=8JJ101D3knE",
		types.PlatformYouTube, 1, types.DifficultyBeginner, "Git crash course", 4.8, "Free"),

	seed("Redis", "Redis: The Complete Developer's Guide", "https://www.udemy.com/course/redis-the-complete-developers-guide/",
		types.PlatformUdemy, 3, types.DifficultyIntermediate, "Master Redis", 4.6, "$19.99"),

	seed("GraphQL", "GraphQL with React", "https://www.udemy.com/course/graphql-with-react-course/",
		types.PlatformUdemy, 4, types.DifficultyIntermediate, "Build modern APIs", 4.5, "$19.99"),

	seed("Django", "Django for Beginners", "https://www.udemy.com/course/django-for-beginners/",
		types.PlatformUdemy, 5, types.DifficultyBeginner, "Python web framework", 4.6, "$19.99"),

	seed("Flask", "REST APIs with Flask", "https://www.udemy.com/course/rest-api-flask-and-python/",
		types.PlatformUdemy, 3, types.DifficultyIntermediate, "Build REST APIs", 4.6, "$19.99"),

	seed("Spring Boot", "Spring Boot Master Class", "https://www.udemy.com/course/spring-boot-tutorial/",
		types.PlatformUdemy, 6, types.DifficultyIntermediate, "Complete Spring Boot", 4.5, "$24.99"),
}

// SeedResources returns a copy of the built-in resource set, used to
// populate a fresh database catalog.
func SeedResources() []types.LearningResource {
	out := make([]types.LearningResource, len(seedResources))
	copy(out, seedResources)
	return out
}

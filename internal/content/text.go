package content

var (
	Headline = `Computer Science & Engineering Student`

	Tagline = `Passionate about building user-friendly and impactful web applications`

	AboutIntro = `Enthusiastic and quick-learning CSE student with a strong foundation in core
computing concepts and problem-solving. Passionate about developing **user-friendly**
applications and continuously improving technical skills.`

	AboutStudies = `Currently pursuing 2nd Year Computer Science & Engineering at KL University,
Hyderabad. I enjoy turning ideas into functional digital solutions and contributing
to meaningful projects.`

	ProjectAssistly = `Assistly is a web-based community assistance platform designed to connect
individuals in need with volunteers and contributors. Users can post requests, offer help,
and collaborate efficiently. The platform focuses on creating a supportive digital ecosystem
for real-world community impact.`

	ContactPitch = `I am currently looking for internship opportunities and collaborative
projects. Feel free to reach out!`
)

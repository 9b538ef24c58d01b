package content

var profile = Profile{
	Name:         "Yamini Chhabra",
	Initials:     "YC",
	Title:        "Senior Full-Stack Engineer",
	Tagline:      "10 Years Experience",
	Summary:      "10 years building enterprise applications for millions of users. Expert in React, Node.js, AWS, and leading high-performance engineering teams.",
	Availability: "Available for Opportunities",
	Prompt:       "yamini@enterprise:~$",
	Email:        "yaminichhabra7@gmail.com",
	Phone:        "+19802231782",
	GitHub:       "https://github.com/yaminichhabra",
	LinkedIn:     "https://linkedin.com/in/yaminichhabra",
}

var commands = []string{
	"git log --oneline --author='Yamini Chhabra' | head -10",
	"// Active GitHub contributions • Real hands-on coding",
	"ls ~/side-projects/",
	"// twilio-pager/ smart-home-lights/ meme-generator-cli/",
	"grep -r 'performance improvement' production/",
	"// 25% faster Cambridge University Press app",
	"python3 ~/home-automation/deploy-lights.py --status=success",
	"// 🟢 House lights now green - deployment successful!",
	"docker stats pangea-production",
	"// AI flight integration • 85% automation achieved",
	"curl -s https://api.github.com/users/yaminichhabra7",
	"// Real GitHub stats loading above ↑",
	"// Ready to architect your next billion-user platform 🚀",
}

var metrics = []Metric{
	{Value: "6M+", Label: "Users Served", Detail: "Cambridge University Press platform"},
	{Value: "25%", Label: "Performance Boost", Detail: "Page load time improvement"},
	{Value: "85%", Label: "Automation Gain", Detail: "Manual data entry reduction"},
	{Value: "70%", Label: "Bug Reduction", Detail: "Through testing frameworks"},
	{Value: "110%", Label: "User Growth", Detail: "Pangea Wrapped feature impact"},
	{Value: "40%", Label: "Deploy Speed", Detail: "CI/CD pipeline optimization"},
}

var recommendations = []Recommendation{
	{
		Name:    "Senior Engineering Manager",
		Company: "Cambridge University Press",
		Text:    "Yamini consistently delivered high-quality solutions and demonstrated exceptional technical leadership. Her work on our educational platform improved performance by 25% and enhanced user experience for over 100K students globally.",
		Rating:  5,
	},
	{
		Name:    "Technical Director",
		Company: "Vista Higher Learning",
		Text:    "Outstanding full-stack engineer with deep expertise in React and Node.js. Yamini's implementation of our SSO system was flawless and significantly improved security across our platform.",
		Rating:  5,
	},
	{
		Name:    "Product Manager",
		Company: "The Pangea Technology Group",
		Text:    "Yamini is a founding-level engineer who can take complex requirements and deliver elegant solutions. Her AI flight integration feature reduced manual work by 85% and drove our user growth by 110%.",
		Rating:  5,
	},
}

var skills = []SkillCategory{
	{
		Key: "frontend", Title: "Frontend", Color: "#22D3EE",
		Items: []Skill{
			{Name: "React", Level: 98, Experience: "6+ years", RealWork: "CUP Nemo, Pangea, VHL Reader"},
			{Name: "React Native", Level: 95, Experience: "5+ years", RealWork: "CUP Nemo, Pangea mobile apps"},
			{Name: "TypeScript", Level: 92, Experience: "8+ years", RealWork: "Enterprise applications"},
			{Name: "Angular", Level: 88, Experience: "5+ years", RealWork: "VHL Reader, seed applications"},
			{Name: "Vue.js", Level: 85, Experience: "3+ years", RealWork: "Cambridge University Press"},
		},
	},
	{
		Key: "backend", Title: "Backend", Color: "#2DD4BF",
		Items: []Skill{
			{Name: "Node.js", Level: 96, Experience: "10 years", RealWork: "All major projects, REST APIs"},
			{Name: "Java", Level: 90, Experience: "3+ years", RealWork: "Enterprise backend systems"},
			{Name: "MongoDB", Level: 88, Experience: "5+ years", RealWork: "Pangea, data modeling"},
			{Name: "Express", Level: 94, Experience: "10 years", RealWork: "API development, middleware"},
			{Name: "Redis", Level: 85, Experience: "10 years", RealWork: "Caching, session management"},
		},
	},
	{
		Key: "cloud", Title: "Cloud", Color: "#C084FC",
		Items: []Skill{
			{Name: "AWS Lambda", Level: 94, Experience: "7+ years", RealWork: "Serverless architecture, Pangea"},
			{Name: "AWS S3/CloudFront", Level: 92, Experience: "7+ years", RealWork: "Asset management, CDN"},
			{Name: "API Gateway", Level: 88, Experience: "7+ years", RealWork: "Microservices, routing"},
			{Name: "DynamoDB", Level: 86, Experience: "4+ years", RealWork: "NoSQL data storage"},
			{Name: "Docker", Level: 90, Experience: "7+ years", RealWork: "Containerization, deployment"},
		},
	},
	{
		Key: "leadership", Title: "Leadership", Color: "#FBBF24",
		Items: []Skill{
			{Name: "Team Leadership", Level: 93, Experience: "5+ years", RealWork: "Led team of 9 at Compro"},
			{Name: "Mentoring", Level: 89, Experience: "5+ years", RealWork: "Trained 3 new engineers"},
			{Name: "Architecture Design", Level: 91, Experience: "6+ years", RealWork: "Full-stack system design"},
			{Name: "Code Review", Level: 95, Experience: "7+ years", RealWork: "Quality assurance, best practices"},
			{Name: "Technical Strategy", Level: 87, Experience: "8+ years", RealWork: "Technology decisions, roadmaps"},
		},
	},
}

var enterprises = []Enterprise{
	{
		Name:     "The Pangea Technology Group",
		Role:     "Application Software Engineer",
		Period:   "Jan 2023 — Present",
		Location: "North Carolina, US",
		Type:     "CURRENT",
		Impact: []string{
			"Built AI-powered flight integration reducing manual entry by 85%",
			"Delivered Pangea Wrapped feature driving 110% user growth",
			"Architected full-stack mobile + web platform from ground up",
			"Established testing framework reducing production bugs by 70%",
		},
		TechStack: []string{"React Native", "React", "Node.js", "MongoDB", "AWS Lambda", "AI APIs"},
		Metrics: []KeyValue{
			{Key: "users", Value: "20K+"}, {Key: "growth", Value: "110%"},
			{Key: "automation", Value: "85%"}, {Key: "reliability", Value: "70% ↓ bugs"},
		},
	},
	{
		Name:     "Compro Technologies",
		Role:     "Senior Software Engineer → Software Engineer",
		Period:   "Jul 2015 — Dec 2022",
		Location: "Delhi, India",
		Type:     "ENTERPRISE",
		Impact: []string{
			"Led Cambridge University Press project serving 100K+ students",
			"Achieved 25% improvement in page load times through optimization",
			"Led cross-functional team of 9 engineers through complex projects",
			"Implemented CI/CD pipeline reducing deployment time by 40%",
		},
		TechStack: []string{"React", "Vue.js", "Angular", "Node.js", "Java", "AWS", "Docker"},
		Metrics: []KeyValue{
			{Key: "scale", Value: "6M+ users"}, {Key: "performance", Value: "25% ↑"},
			{Key: "team", Value: "9 engineers"}, {Key: "deployment", Value: "40% faster"},
		},
	},
}

var projects = []Project{
	{
		Name:        "CUP Nemo App",
		Client:      "Cambridge University Press",
		Scale:       "6M+ students globally",
		Description: "Offline-accessible mobile education platform with seamless content synchronization",
		TechStack:   []string{"React Native", "React", "Vue.js", "Redux", "Node.js", "AWS CloudFront", "Webpack"},
		Achievements: []string{
			"Custom Webpack plugin for optimized AWS asset management",
			"Serverless architecture with background task processing",
			"Offline-first architecture with modular micro-applications",
			"Enhanced app performance and security for rapid deployment",
		},
		Metrics: []KeyValue{
			{Key: "users", Value: "6M+"}, {Key: "performance", Value: "25% faster"},
			{Key: "architecture", Value: "Serverless"}, {Key: "deployment", Value: "Automated"},
		},
	},
	{
		Name:        "VHL Reader",
		Client:      "Vista Higher Learning",
		Scale:       "50K+ language learners",
		Description: "Interactive reading platform with enterprise-grade authentication and responsive design",
		TechStack:   []string{"Angular.js", "Java", "Node.js", "OAuth", "JWT", "LTI", "RequireJS", "Grunt"},
		Achievements: []string{
			"Single Sign-On (SSO) using Central Authentication Service (CAS)",
			"Learning Tools Interoperability (LTI) integration",
			"Responsive UI components with reusable architecture",
			"Middleware solutions for session management and authentication",
		},
		Metrics: []KeyValue{
			{Key: "users", Value: "50K+"}, {Key: "auth", Value: "Multi-platform SSO"},
			{Key: "security", Value: "Enterprise-grade"}, {Key: "integration", Value: "LTI compliant"},
		},
	},
	{
		Name:        "Pangea Travel Platform",
		Client:      "The Pangea Technology Group",
		Scale:       "10K+ users, 110% growth",
		Description: "AI-powered travel ecosystem with automated itinerary planning and social features",
		TechStack:   []string{"React Native", "React", "Node.js", "MongoDB", "AWS Lambda", "AI/ML APIs"},
		Achievements: []string{
			"AI flight integration parsing emails with intelligent extraction",
			"End-to-end development from conception to deployment",
			"Comprehensive testing frameworks for reliability",
			"Pangea Wrapped analytics feature driving user engagement",
		},
		Metrics: []KeyValue{
			{Key: "growth", Value: "110%"}, {Key: "automation", Value: "85%"},
			{Key: "testing", Value: "70% ↓ bugs"}, {Key: "engagement", Value: "High retention"},
		},
	},
}

var explorations = []Exploration{
	{Status: "Learning", Title: "WebAssembly", Description: "Exploring high-performance web apps with Rust + WASM"},
	{Status: "Experimenting", Title: "Edge Computing", Description: "Cloudflare Workers + Durable Objects for global state"},
	{Status: "Building", Title: "AI Integration", Description: "Custom GPT plugins for development workflow automation"},
	{Status: "Prototyping", Title: "Voice Interfaces", Description: "Hey Siri, deploy my app! (Actually working on this)"},
}

var sideProjects = []SideProject{
	{Title: "Custom Pager System", Description: "Built a Twilio-powered pager that sends SMS alerts when production systems need attention. Because sometimes you need old-school reliability with modern tech!", Tags: []string{"Twilio API", "Node.js", "WebHooks"}},
	{Title: "Smart Home Automation", Description: "Raspberry Pi-powered home automation that changes light colors based on deployment status. Green for successful deploys, red for failures.", Tags: []string{"Raspberry Pi", "IoT", "Python", "Philips Hue"}},
	{Title: "Weekend Hackathon Projects", Description: "Regular weekend experiments: Chrome extensions, VS Code plugins, React component libraries. Latest: a CLI tool that generates memes from git commit messages.", Tags: []string{"Chrome APIs", "VS Code API", "CLI Tools"}},
}

var statImages = []StatImage{
	{Title: "GitHub stats", URL: "https://github-readme-stats.vercel.app/api?username=yaminichhabra&show_icons=true&theme=dark&bg_color=1e293b&title_color=3b82f6&text_color=e2e8f0&icon_color=10b981&border_color=475569"},
	{Title: "Contribution streak", URL: "https://github-readme-streak-stats.herokuapp.com/?user=yaminichhabra&theme=dark&background=1e293b&border=475569&stroke=3b82f6&ring=10b981&fire=f59e0b&currStreakNum=e2e8f0&sideNums=e2e8f0&currStreakLabel=3b82f6&sideLabels=64748b&dates=94a3b8"},
	{Title: "Top languages", URL: "https://github-readme-stats.vercel.app/api/top-langs/?username=yaminichhabra&layout=compact&theme=dark&bg_color=1e293b&title_color=3b82f6&text_color=e2e8f0&border_color=475569"},
}

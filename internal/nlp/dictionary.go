package nlp

// skillCategory groups lower-cased canonical keywords under a category name.
// Categories and skills are slices, not maps, so discovery order is identical
// on every run.
type skillCategory struct {
	Name   string
	Skills []string
}

var skillCategories = []skillCategory{
	{
		Name: "Programming Languages",
		Skills: []string{
			"java", "python", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
			"kotlin", "swift", "scala", "r", "matlab", "perl", "shell", "bash", "powershell",
			"html", "css", "sql", "pl/sql", "assembly", "fortran", "cobol", "pascal", "ada",
			"lisp", "prolog", "haskell", "erlang", "elixir", "clojure", "groovy", "dart", "f#",
		},
	},
	{
		Name: "Frameworks",
		Skills: []string{
			"spring", "spring boot", "hibernate", "react", "angular", "vue", "node.js", "express",
			"django", "flask", "rails", "laravel", ".net", "asp.net", "junit", "mockito", "jest",
			"bootstrap", "tailwind", "material-ui", "ant design", "jquery", "lodash", "underscore",
			"struts", "jsf", "wicket", "vaadin", "gwt", "play framework", "dropwizard", "micronaut",
			"quarkus", "vert.x", "akka", "spark", "tensorflow", "pytorch", "scikit-learn", "pandas",
			"numpy", "matplotlib", "seaborn", "plotly", "d3.js", "chart.js", "socket.io", "graphql",
		},
	},
	{
		Name: "Databases",
		Skills: []string{
			"mysql", "postgresql", "oracle", "mongodb", "redis", "elasticsearch", "cassandra",
			"sqlite", "sql server", "dynamodb", "firebase", "neo4j", "influxdb", "couchdb",
			"mariadb", "db2", "sybase", "hbase", "hive", "impala", "presto", "snowflake",
			"bigquery", "redshift", "aurora", "documentdb", "timestream", "keyspaces",
		},
	},
	{
		Name: "Cloud Platforms",
		Skills: []string{
			"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
			"github actions", "terraform", "ansible", "chef", "puppet", "nagios", "prometheus",
			"ec2", "s3", "lambda", "ecs", "eks", "rds", "dynamodb", "cloudfront", "route53",
			"vpc", "iam", "cloudwatch", "sns", "sqs", "api gateway", "elastic beanstalk",
			"app service", "functions", "cosmos db", "blob storage", "virtual machines",
			"compute engine", "cloud storage", "cloud functions", "bigtable", "datastore",
			"helm", "istio", "linkerd", "consul", "vault", "nomad", "rancher", "openshift",
			"circleci", "travis ci", "bamboo", "teamcity", "gitlab ci", "azure devops",
		},
	},
	{
		Name: "Tools & Technologies",
		Skills: []string{
			"git", "maven", "gradle", "npm", "webpack", "babel", "eslint", "sonar", "jira",
			"confluence", "postman", "swagger", "linux", "unix", "windows", "apache", "nginx",
			"tomcat", "jboss", "weblogic", "websphere", "glassfish", "jetty", "undertow",
			"intellij", "eclipse", "vscode", "vim", "emacs", "sublime", "atom", "notepad++",
			"soapui", "insomnia", "curl", "wget", "rsync", "scp", "ssh", "telnet", "ftp",
			"sftp", "ldap", "active directory", "kerberos", "oauth", "jwt", "saml", "openid",
			"oauth2", "oauth 2.0", "rest", "soap", "xml", "json", "yaml", "toml", "ini",
			"csv", "excel", "powerpoint", "word", "outlook", "teams", "slack", "discord",
			"zoom", "webex", "skype", "trello", "asana", "basecamp", "notion", "evernote",
		},
	},
	{
		Name: "Soft Skills",
		Skills: []string{
			"leadership", "communication", "problem solving", "team work", "project management",
			"analytical thinking", "creativity", "adaptability", "time management", "mentoring",
			"collaboration", "negotiation", "presentation", "public speaking", "critical thinking",
			"decision making", "conflict resolution", "emotional intelligence", "empathy",
			"customer service", "sales", "marketing", "strategic planning", "risk management",
			"quality assurance", "continuous improvement", "agile", "scrum", "kanban", "lean",
			"six sigma", "design thinking", "user experience", "user interface", "accessibility",
		},
	},
	{
		Name: "Data Science",
		Skills: []string{
			"machine learning", "deep learning", "artificial intelligence", "ai", "ml", "dl",
			"data analysis", "data visualization", "statistics", "probability", "regression",
			"classification", "clustering", "neural networks", "cnn", "rnn", "lstm", "transformer",
			"bert", "gpt", "nlp", "natural language processing", "computer vision", "opencv",
			"image processing", "signal processing", "time series", "forecasting", "optimization",
			"genetic algorithms", "reinforcement learning", "unsupervised learning", "supervised learning",
		},
	},
	{
		Name: "Security",
		Skills: []string{
			"cybersecurity", "information security", "network security", "application security",
			"penetration testing", "vulnerability assessment", "security auditing", "compliance",
			"gdpr", "hipaa", "sox", "pci dss", "iso 27001", "nist", "owasp", "encryption",
			"cryptography", "ssl", "tls", "vpn", "firewall", "ids", "ips", "siem", "soc",
			"incident response", "threat hunting", "malware analysis", "forensics", "authentication",
			"authorization", "rbac", "mfa", "2fa", "biometric", "zero trust", "devsecops",
		},
	},
	{
		Name: "Mobile Development",
		Skills: []string{
			"android", "ios", "react native", "flutter", "xamarin", "ionic", "cordova", "phonegap",
			"swift", "objective-c", "kotlin", "java", "dart", "c#", "xcode", "android studio",
			"app store", "google play", "mobile testing", "ui/ux", "responsive design",
		},
	},
}

// skillVariations maps a canonical skill to the abbreviations and aliases
// that also count as a sighting, at reduced confidence.
var skillVariations = map[string][]string{
	"javascript":               {"js", "node.js", "nodejs"},
	"typescript":               {"ts"},
	"postgresql":               {"postgres"},
	"spring boot":              {"springboot"},
	"react":                    {"react.js", "reactjs"},
	"angular":                  {"angular.js", "angularjs"},
	"vue":                      {"vue.js", "vuejs"},
	"node.js":                  {"nodejs", "node"},
	"machine learning":         {"ml"},
	"artificial intelligence":  {"ai"},
	"deep learning":            {"dl"},
	"natural language processing": {"nlp"},
	"kubernetes":               {"k8s"},
	"aws":                      {"amazon web services"},
	"azure":                    {"microsoft azure"},
	"google cloud":             {"gcp"},
	"mysql":                    {"my sql"},
	"mongodb":                  {"mongo"},
	"elasticsearch":            {"elastic search", "es"},
	"git":                      {"version control"},
	"jenkins":                  {"ci/cd"},
	"terraform":                {"infrastructure as code"},
	"jira":                     {"atlassian jira"},
	"confluence":               {"atlassian confluence"},
	"postman":                  {"api testing"},
	"swagger":                  {"openapi"},
	"linux":                    {"unix"},
	"apache":                   {"httpd"},
	"nginx":                    {"web server"},
	"tomcat":                   {"apache tomcat"},
	"intellij":                 {"intellij idea"},
	"eclipse":                  {"eclipse ide"},
	"vscode":                   {"visual studio code"},
	"maven":                    {"apache maven"},
	"npm":                      {"node package manager"},
	"webpack":                  {"bundler"},
	"babel":                    {"transpiler"},
	"eslint":                   {"linting"},
	"sonar":                    {"sonarqube"},
	"agile":                    {"agile methodology"},
	"scrum":                    {"agile scrum"},
	"kanban":                   {"kanban board"},
	"devops":                   {"development operations"},
	"microservices":            {"microservice architecture"},
	"rest":                     {"restful"},
	"soap":                     {"simple object access protocol"},
	"graphql":                  {"graph ql"},
	"json":                     {"javascript object notation"},
	"xml":                      {"extensible markup language"},
	"yaml":                     {"yaml configuration"},
	"sql":                      {"structured query language"},
	"nosql":                    {"no sql"},
	"html":                     {"html5"},
	"css":                      {"css3"},
	"bootstrap":                {"twitter bootstrap"},
	"tailwind":                 {"tailwind css"},
	"material-ui":              {"material ui", "mui"},
	"ant design":               {"antd"},
	"jquery":                   {"jquery library"},
	"lodash":                   {"javascript utility library"},
	"underscore":               {"javascript utility library"},
	"socket.io":                {"websockets"},
	"oauth":                    {"oauth2", "oauth 2.0"},
	"jwt":                      {"json web token"},
	"ssl":                      {"secure sockets layer"},
	"tls":                      {"transport layer security"},
	"vpn":                      {"virtual private network"},
	"firewall":                 {"network security"},
	"encryption":               {"cryptography"},
	"authentication":           {"auth"},
	"authorization":            {"permissions"},
	"rbac":                     {"role-based access control"},
	"mfa":                      {"multi-factor authentication", "2fa"},
	"gdpr":                     {"general data protection regulation"},
	"hipaa":                    {"health insurance portability and accountability act"},
	"sox":                      {"sarbanes-oxley act"},
	"pci dss":                  {"payment card industry data security standard"},
	"iso 27001":                {"information security management"},
	"owasp":                    {"open web application security project"},
	"penetration testing":      {"pen testing"},
	"vulnerability assessment": {"security assessment"},
	"incident response":        {"security incident"},
}

// contextKeywords mark a stretch of text as a skill listing; a skill found
// near one of these scores higher than a bare substring hit.
var contextKeywords = []string{
	"skills", "technologies", "tools", "frameworks", "languages", "databases", "platforms",
}

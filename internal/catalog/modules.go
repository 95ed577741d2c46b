package catalog

var modules = []Module{
	{
		ID:          "web-fundamentals",
		Title:       "Web Development Fundamentals",
		Description: "Introduction to web development, how the internet works, and development environment setup",
		Emoji:       "🌐",
		Difficulty:  DifficultyBeginner,
		Duration:    "2 weeks",
		XPReward:    450,
		Skills:      []string{"Web Fundamentals", "Developer Tools", "Version Control"},
		Projects:    []string{"Personal Portfolio Setup", "Git Repository Creation"},
		Lessons: []Lesson{
			{
				ID:          "1",
				Title:       "How the Web Works",
				Description: "Understanding the fundamentals of web communication",
				Content: `The World Wide Web is a system of interconnected documents and resources, linked by hyperlinks and URLs. When you type a website address into your browser, a complex process begins:

1. **DNS Resolution**: Your browser contacts a DNS server to translate the domain name into an IP address
2. **HTTP Request**: Your browser sends an HTTP request to the server at that IP address
3. **Server Processing**: The server processes your request and prepares a response
4. **HTTP Response**: The server sends back HTML, CSS, JavaScript, and other resources
5. **Rendering**: Your browser interprets and displays the content

This process happens millions of times per second across the internet, enabling the seamless web experience we're familiar with.`,
				CodeExample: `// Example of a simple HTTP request in JavaScript
fetch('https://api.example.com/data')
  .then(response => response.json())
  .then(data => console.log(data))
  .catch(error => console.error('Error:', error));`,
				Type:          "theory",
				XPReward:      25,
				EstimatedTime: 30,
				Tips:          "Think of the web like a postal system - browsers are like mailboxes, servers are like post offices, and HTTP is the postal service!",
			},
			{
				ID:          "2",
				Title:       "Setting Up Your Development Environment",
				Description: "Installing and configuring essential development tools",
				Content: `A proper development environment is crucial for efficient coding. Let's set up the essential tools:

**Visual Studio Code**: A powerful, free code editor with excellent extensions
**Git**: Version control system for tracking changes in your code
**Node.js**: JavaScript runtime for running JavaScript outside the browser
**Browser Developer Tools**: Built-in debugging and inspection tools

Setting up these tools properly will save you countless hours and make your development process much smoother.`,
				Challenge: "Set up VS Code with essential extensions and create your first HTML file",
				StarterCode: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>My First Web Page</title>
</head>
<body>
    <!-- Add your content here -->

</body>
</html>`,
				ExpectedOutput: `A basic HTML page displaying "Hello, World!"`,
				Type:           "practice",
				XPReward:       35,
				EstimatedTime:  45,
				Tips:           "Extensions like Live Server, Prettier, and GitLens will make your coding experience much better!",
			},
			{
				ID:          "3",
				Title:       "Understanding HTTP and HTTPS",
				Description: "Learn about web protocols and security",
				Content: `HTTP (HyperText Transfer Protocol) and HTTPS (HTTP Secure) are the foundation of web communication.

**HTTP Methods:**
- GET: Retrieve data from server
- POST: Send data to server
- PUT: Update existing data
- DELETE: Remove data

**Status Codes:**
- 200: Success
- 404: Not Found
- 500: Server Error

**HTTPS** adds encryption for secure communication.`,
				CodeExample: `// Different HTTP methods with fetch
// GET request
fetch('/api/users')
  .then(response => response.json())

// POST request
fetch('/api/users', {
  method: 'POST',
  headers: {
    'Content-Type': 'application/json',
  },
  body: JSON.stringify({ name: 'John', email: 'john@example.com' })
})`,
				Type:          "theory",
				XPReward:      30,
				EstimatedTime: 40,
				Tips:          "Always use HTTPS in production for security!",
			},
		},
	},
	{
		ID:          "html-fundamentals",
		Title:       "HTML5 Mastery",
		Description: "Complete HTML5 structure, semantic elements, forms, and accessibility best practices",
		Emoji:       "📄",
		Difficulty:  DifficultyBeginner,
		Duration:    "2 weeks",
		XPReward:    520,
		Skills:      []string{"HTML5", "Semantic Markup", "Web Accessibility", "SEO"},
		Projects:    []string{"Resume Website", "Contact Form", "Blog Layout"},
		Lessons: []Lesson{
			{
				ID:          "1",
				Title:       "HTML Document Structure",
				Description: "Understanding the basic structure of HTML documents",
				Content: `Every HTML document follows a standard structure that browsers can understand and process. This structure includes:

**DOCTYPE Declaration**: Tells the browser which version of HTML to use
**HTML Element**: The root element that contains all other elements
**Head Section**: Contains metadata about the document
**Body Section**: Contains the visible content of the page

Understanding this structure is fundamental to creating well-formed web pages.`,
				CodeExample: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Document Title</title>
    <meta name="description" content="Page description">
</head>
<body>
    <header>
        <h1>Welcome to My Website</h1>
    </header>
    <main>
        <p>This is the main content area.</p>
    </main>
    <footer>
        <p>&copy; 2024 My Website</p>
    </footer>
</body>
</html>`,
				Type:          "theory",
				XPReward:      25,
				EstimatedTime: 30,
				Tips:          "Always include the lang attribute in your HTML element for better accessibility!",
			},
			{
				ID:          "2",
				Title:       "Semantic HTML Elements",
				Description: "Using meaningful HTML elements for better structure and accessibility",
				Content: `Semantic HTML elements provide meaning to your content, making it more accessible and SEO-friendly.

**Key Semantic Elements:**
- <header>: Page or section header
- <nav>: Navigation links
- <main>: Main content area
- <article>: Independent content
- <section>: Thematic grouping
- <aside>: Sidebar content
- <footer>: Page or section footer

These elements help screen readers and search engines understand your content structure.`,
				Challenge: "Create a semantic HTML structure for a blog post",
				StarterCode: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>My Blog Post</title>
</head>
<body>
    <!-- Create a semantic structure with header, nav, main, article, aside, and footer -->

</body>
</html>`,
				ExpectedOutput: "A properly structured HTML document using semantic elements",
				Type:           "practice",
				XPReward:       35,
				EstimatedTime:  45,
				Tips:           "Think about the meaning of your content, not just how it looks!",
			},
		},
	},
}

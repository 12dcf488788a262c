package render

const portfolioGridTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Portfolio</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; background: #f5f5f5; }
        header { background: #2c3e50; color: white; padding: 40px 20px; text-align: center; }
        h1 { font-size: 2.5em; margin-bottom: 10px; }
        .container { max-width: 1200px; margin: 0 auto; padding: 40px 20px; }
        .portfolio-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 30px; }
        .portfolio-item { background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 10px rgba(0,0,0,0.1); transition: transform 0.3s; }
        .portfolio-item:hover { transform: translateY(-5px); box-shadow: 0 5px 20px rgba(0,0,0,0.2); }
        .portfolio-image { width: 100%; height: 200px; background: #ecf0f1; display: flex; align-items: center; justify-content: center; color: #95a5a6; }
        .portfolio-content { padding: 20px; }
        .portfolio-title { font-size: 1.5em; color: #2c3e50; margin-bottom: 10px; }
        .portfolio-description { color: #7f8c8d; margin-bottom: 15px; }
        .portfolio-tags { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 15px; }
        .tag { background: #3498db; color: white; padding: 4px 12px; border-radius: 15px; font-size: 0.85em; }
        .portfolio-link { display: inline-block; color: #3498db; text-decoration: none; font-weight: bold; }
        .portfolio-link:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <header>
        <h1>{{.Name}}</h1>
        <p>My Portfolio</p>
    </header>

    <div class="container">
        <div class="portfolio-grid">
            {{range .Items}}
            <div class="portfolio-item">
                <div class="portfolio-image">
                    {{if .ImageURI}}<img src="{{.ImageURI}}" alt="{{.Title}}" style="width: 100%; height: 100%; object-fit: cover;">{{else}}<span>No Image</span>{{end}}
                </div>
                <div class="portfolio-content">
                    <h2 class="portfolio-title">{{.Title}}</h2>
                    <p class="portfolio-description">{{.Description}}</p>
                    {{if .Tags}}
                    <div class="portfolio-tags">
                        {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
                    </div>
                    {{end}}
                    {{if .Link}}<a href="{{.Link}}" class="portfolio-link" target="_blank">View Project &rarr;</a>{{end}}
                </div>
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>`

const portfolioListTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Portfolio</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; background: #fff; }
        header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 60px 20px; text-align: center; }
        h1 { font-size: 3em; margin-bottom: 10px; }
        .container { max-width: 900px; margin: 0 auto; padding: 40px 20px; }
        .portfolio-item { background: white; margin-bottom: 30px; padding: 30px; border-left: 5px solid #667eea; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .portfolio-header { display: flex; justify-content: space-between; align-items: start; margin-bottom: 15px; }
        .portfolio-title { font-size: 1.8em; color: #2c3e50; margin-bottom: 5px; }
        .portfolio-image { width: 200px; height: 150px; background: #ecf0f1; display: flex; align-items: center; justify-content: center; color: #95a5a6; border-radius: 5px; margin-left: 20px; flex-shrink: 0; }
        .portfolio-main { flex: 1; }
        .portfolio-description { color: #555; margin-bottom: 15px; line-height: 1.8; }
        .portfolio-tags { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 15px; }
        .tag { background: #667eea; color: white; padding: 5px 15px; border-radius: 20px; font-size: 0.85em; }
        .portfolio-link { color: #667eea; text-decoration: none; font-weight: bold; font-size: 0.95em; }
        .portfolio-link:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <header>
        <h1>{{.Name}}</h1>
        <p style="font-size: 1.2em; margin-top: 10px;">Portfolio Collection</p>
    </header>

    <div class="container">
        {{range .Items}}
        <div class="portfolio-item">
            <div class="portfolio-header">
                <div class="portfolio-main">
                    <h2 class="portfolio-title">{{.Title}}</h2>
                    <p class="portfolio-description">{{.Description}}</p>
                    {{if .Tags}}
                    <div class="portfolio-tags">
                        {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
                    </div>
                    {{end}}
                    {{if .Link}}<a href="{{.Link}}" class="portfolio-link" target="_blank">View Project &rarr;</a>{{end}}
                </div>
                {{if .ImageURI}}
                <div class="portfolio-image">
                    <img src="{{.ImageURI}}" alt="{{.Title}}" style="width: 100%; height: 100%; object-fit: cover; border-radius: 5px;">
                </div>
                {{else}}
                <div class="portfolio-image"><span>No Image</span></div>
                {{end}}
            </div>
        </div>
        {{end}}
    </div>
</body>
</html>`
